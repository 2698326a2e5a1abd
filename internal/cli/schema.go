package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/sq/internal/ui"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the cached schema for the current profile",
	Long: `List the objects of the current profile's schema: tables and views, their
column counts, and the usage score driving name resolution.

The schema is introspected and cached on first use; run "sq schema refresh"
after the database changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, profileName, err := loadSchema(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Header(profileName))

		tbl := ui.NewTable(4)
		scores := s.ObjectScores()
		for id, obj := range s.Objects() {
			scoreCell := "-"
			if sc, ok := scores.Get(id); ok {
				scoreCell = strconv.FormatFloat(sc.Value, 'g', 4, 64)
			}
			tbl.AddRow(obj.Name, obj.Kind.String(), strconv.Itoa(len(obj.Columns))+" cols", scoreCell)
		}
		fmt.Fprint(cmd.OutOrStdout(), tbl)
		return nil
	},
}

var schemaRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-introspect the database and replace the cached schema",
	Long: `Discard the cached schema for the current profile and introspect the
database again. Usage scores are stored alongside the schema, so a refresh
resets them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, name, err := currentProfile()
		if err != nil {
			return err
		}

		s, err := refreshSchema(cmd.Context(), profile, name, cacheStore())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("refreshed %s: %d objects, %d columns",
			ui.Name(name), s.NumObjects(), s.NumColumns()))
		return nil
	},
}

func init() {
	schemaCmd.AddCommand(schemaRefreshCmd)
	rootCmd.AddCommand(schemaCmd)
}
