package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/sq/internal/query"
	"github.com/aidanlsb/sq/internal/resolver"
	"github.com/aidanlsb/sq/internal/schema"
	"github.com/aidanlsb/sq/internal/sqlgen"
	"github.com/aidanlsb/sq/internal/ui"
)

var queryCmd = &cobra.Command{
	Use:     "query <shorthand>...",
	Aliases: []string{"q"},
	Short:   "Resolve shorthand and generate SQL",
	Long: `Parse a shorthand query, resolve its abbreviated names against the
current profile's schema, and print the generated SQL.

Trailing arguments are joined with spaces, so quoting the whole query is
optional:

  sq query user>priv name=admin
  sq q "user>priv name='a b'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")

		parsed, err := query.Parse(input)
		if err != nil {
			return err
		}

		s, profileName, err := loadSchema(cmd.Context())
		if err != nil {
			return err
		}

		resolved, err := resolver.Resolve(s, parsed)
		if err != nil {
			return err
		}
		// Resolution bumped usage scores; persist them for next time.
		if err := saveScores(profileName, s); err != nil {
			return err
		}

		built, err := sqlgen.Build(s, resolved)
		if err != nil {
			return err
		}

		if ui.IsTTY() {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Hint(resolvedShorthand(s, resolved)))
		}
		fmt.Fprintln(cmd.OutOrStdout(), sqlgen.Dialect{}.Render(built))
		return nil
	},
}

// resolvedShorthand renders the resolved query with full object names in
// place of the user's abbreviations.
func resolvedShorthand(s *schema.Schema, q *query.Query[schema.ObjectID, string]) string {
	named := &query.Query[string, string]{
		Object: query.MapTree(q.Object, func(id schema.ObjectID) string {
			if obj, ok := s.Object(id); ok {
				return obj.Name
			}
			return id.String()
		}),
		Predicates: q.Predicates,
	}
	return named.String()
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
