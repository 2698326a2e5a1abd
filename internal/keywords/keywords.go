// Package keywords implements name tokenization and prefix matching for
// schema entity lookup.
package keywords

import "strings"

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Split extracts the keywords of a name: maximal runs of ASCII letters and
// maximal runs of ASCII digits. Any other byte is a separator and never
// appears in the output. Case is preserved; callers normalize as needed.
//
//	Split("hello_world, testing123!") → ["hello", "world", "testing", "123"]
func Split(s string) []string {
	var out []string
	for i := 0; i < len(s); {
		start := i
		switch {
		case isAlpha(s[i]):
			for i < len(s) && isAlpha(s[i]) {
				i++
			}
		case isDigit(s[i]):
			for i < len(s) && isDigit(s[i]) {
				i++
			}
		default:
			i++
			continue
		}
		out = append(out, s[start:i])
	}
	return out
}

// MatchKind classifies how a candidate name matched a search token.
type MatchKind int

const (
	// MatchExact means the whole name equals the token.
	MatchExact MatchKind = iota
	// MatchPrefix means some keyword of the name starts with the token.
	MatchPrefix
)

func (k MatchKind) String() string {
	if k == MatchExact {
		return "exact"
	}
	return "prefix"
}

// Match pairs a matched value with its classification.
type Match[V any] struct {
	Kind  MatchKind
	Value V
}

type entry[V any] struct {
	name     string
	keywords []string
	value    V
}

// Index is a one-shot lookup structure over a candidate universe. It is
// rebuilt for every resolution step because the universe changes with the
// ancestor constraint; it is not a persistent global index.
type Index[V any] struct {
	entries []entry[V]
}

// Add registers a candidate under its name. Names are matched
// case-insensitively; insertion order is preserved in Match results.
func (x *Index[V]) Add(name string, value V) {
	folded := strings.ToLower(name)
	x.entries = append(x.entries, entry[V]{
		name:     folded,
		keywords: Split(folded),
		value:    value,
	})
}

// Match classifies every candidate against token, returning exact and prefix
// matches in insertion order and dropping everything else.
func (x *Index[V]) Match(token string) []Match[V] {
	token = strings.ToLower(token)

	var out []Match[V]
	for _, e := range x.entries {
		if e.name == token {
			out = append(out, Match[V]{Kind: MatchExact, Value: e.value})
			continue
		}
		for _, kw := range e.keywords {
			if strings.HasPrefix(kw, token) {
				out = append(out, Match[V]{Kind: MatchPrefix, Value: e.value})
				break
			}
		}
	}
	return out
}
