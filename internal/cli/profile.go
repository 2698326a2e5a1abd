package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/sq/internal/config"
	"github.com/aidanlsb/sq/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage connection profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		if len(c.Profiles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Hint("no profiles configured"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Hint("add one to "+mustConfigPath()))
			return nil
		}

		names := make([]string, 0, len(c.Profiles))
		for name := range c.Profiles {
			names = append(names, name)
		}
		sort.Strings(names)

		tbl := ui.NewTable(4)
		for _, name := range names {
			p := c.Profiles[name]
			marker := " "
			if name == c.DefaultProfile {
				marker = "*"
			}
			tbl.AddRow(marker, name, p.Driver, p.Path)
		}
		fmt.Fprint(cmd.OutOrStdout(), tbl)
		return nil
	},
}

func mustConfigPath() string {
	if configPathFlag != "" {
		return configPathFlag
	}
	return config.DefaultPath()
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	rootCmd.AddCommand(profileCmd)
}
