package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/sq/internal/query"
)

var parseCmd = &cobra.Command{
	Use:   "parse <shorthand>...",
	Short: "Parse shorthand without touching a schema",
	Long: `Parse a shorthand query and print it back in normalized form.

Useful for checking syntax: no profile or schema is consulted, so this works
without any configuration.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := query.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), parsed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
