// Package resolver maps the raw identifiers of a parsed shorthand query to
// schema objects using keyword matching ranked by usage recency.
package resolver

import (
	"fmt"

	"github.com/aidanlsb/sq/internal/keywords"
	"github.com/aidanlsb/sq/internal/query"
	"github.com/aidanlsb/sq/internal/schema"
	"github.com/aidanlsb/sq/internal/score"
)

// Error reports the first query identifier that matched no candidate. The
// whole resolution aborts; no partial tree is returned.
type Error struct {
	Identifier string
}

func (e *Error) Error() string {
	return fmt.Sprintf("unable to resolve: '%s'", e.Identifier)
}

// Resolve walks the query's object tree depth-first and binds every node to a
// schema object. The root is matched against every object; a non-root node is
// matched only against objects holding a foreign key that references its
// resolved parent. Each successful binding records a score hit on the winner,
// so frequently used objects win future ambiguous matches.
//
// Predicate identifiers are carried through unresolved; binding them to
// columns is a separate concern.
func Resolve(s *schema.Schema, q *query.Query[string, string]) (*query.Query[schema.ObjectID, string], error) {
	tree, err := resolveTree(s, q.Object, nil)
	if err != nil {
		return nil, err
	}

	out := &query.Query[schema.ObjectID, string]{Object: tree}
	out.Predicates = append(out.Predicates, q.Predicates...)
	return out, nil
}

func resolveTree(s *schema.Schema, node *query.ObjectTree[string], parent *schema.ObjectID) (*query.ObjectTree[schema.ObjectID], error) {
	id, err := resolveName(s, node.Root, parent)
	if err != nil {
		return nil, err
	}

	out := &query.ObjectTree[schema.ObjectID]{Root: id}
	for _, child := range node.Children {
		resolved, err := resolveTree(s, child, &id)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, resolved)
	}
	return out, nil
}

// resolveName picks the best candidate for one identifier. The ranking reads
// scores only; the single hit update happens after the winner is chosen, so a
// match is never influenced by its own update.
func resolveName(s *schema.Schema, name string, parent *schema.ObjectID) (schema.ObjectID, error) {
	var idx keywords.Index[schema.ObjectID]
	for id, obj := range s.Objects() {
		if parent != nil && !referencesObject(obj, *parent) {
			continue
		}
		idx.Add(obj.Name, id)
	}

	matches := idx.Match(name)
	if len(matches) == 0 {
		return schema.ObjectID{}, &Error{Identifier: name}
	}

	scores := s.ObjectScores()
	winner := matches[0]
	winnerScore, winnerScored := scores.Get(winner.Value)
	for _, m := range matches[1:] {
		sc, scored := scores.Get(m.Value)
		if beats(m.Kind, sc, scored, winner.Kind, winnerScore, winnerScored) {
			winner, winnerScore, winnerScored = m, sc, scored
		}
	}

	scores.Hit(winner.Value)
	return winner.Value, nil
}

// beats reports whether candidate a outranks candidate b: exact beats prefix,
// scored beats unscored, then higher score value. Ties lose, which leaves the
// earliest-allocated candidate in place for a deterministic outcome.
func beats(aKind keywords.MatchKind, aScore score.Score, aScored bool,
	bKind keywords.MatchKind, bScore score.Score, bScored bool) bool {
	if aKind != bKind {
		return aKind == keywords.MatchExact
	}
	if aScored != bScored {
		return aScored
	}
	if aScored && aScore.Value != bScore.Value {
		return aScore.Value > bScore.Value
	}
	return false
}

// referencesObject reports whether obj declares a foreign key pointing at
// target. Views declare none, so they never appear as children.
func referencesObject(obj *schema.Object, target schema.ObjectID) bool {
	for _, fk := range obj.ForeignKeys {
		if fk.RefObject == target {
			return true
		}
	}
	return false
}
