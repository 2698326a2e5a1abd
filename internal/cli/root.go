// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/sq/internal/config"
)

var (
	// Global flags
	configPathFlag string
	profileFlag    string

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sq",
	Short: "sq - shorthand queries against your database schema",
	Long: `sq resolves terse shorthand like "user>priv name=admin" against a known
database schema, turning fuzzy table references into concrete, joined SQL.

Identifiers match schema objects by keyword prefix, disambiguated by how
recently and how often you have used each object. Children in a query tree
must be reachable from their parent through a foreign key.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that work without configuration.
		switch cmd.Name() {
		case "version", "docs", "parse", "completion", "help":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		if configPathFlag != "" {
			cfg, err = config.LoadFrom(configPathFlag)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "Named profile from config")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}
