// Package query implements the sq shorthand query language: parsing terse
// input like "user>priv foo=bar" into a generic object tree plus predicates,
// and rendering it back to text.
package query

import (
	"fmt"
	"strconv"
	"strings"
)

// LiteralKind discriminates literal values.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
)

// Literal is a string or integer literal appearing in a predicate.
type Literal struct {
	Kind LiteralKind
	Str  string
	Int  int64
}

// StringLiteral returns a string literal.
func StringLiteral(s string) Literal {
	return Literal{Kind: LiteralString, Str: s}
}

// IntLiteral returns an integer literal.
func IntLiteral(i int64) Literal {
	return Literal{Kind: LiteralInt, Int: i}
}

// String renders the literal: integers as digits, strings bare unless they
// contain a space, in which case they are single-quoted.
func (l Literal) String() string {
	if l.Kind == LiteralInt {
		return strconv.FormatInt(l.Int, 10)
	}
	if strings.Contains(l.Str, " ") {
		return "'" + l.Str + "'"
	}
	return l.Str
}

// Operator is a predicate comparison operator.
type Operator int

const (
	OpEq Operator = iota // =
	OpNe                 // !=
	OpLt                 // <
	OpLe                 // <=
	OpGt                 // >
	OpGe                 // >=
)

func (op Operator) String() string {
	switch op {
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "="
	}
}

// ObjectTree is a join hierarchy of objects. The same shape carries raw
// identifiers before resolution (T = string) and schema IDs after.
//
// "a>b+c>d" parses to root a with children b and c, where d is a child of c.
type ObjectTree[T any] struct {
	Root     T
	Children []*ObjectTree[T]
}

func (t *ObjectTree[T]) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}

func (t *ObjectTree[T]) render(b *strings.Builder) {
	fmt.Fprintf(b, "%v", t.Root)
	if len(t.Children) == 0 {
		return
	}
	b.WriteByte('>')
	for i, child := range t.Children {
		if i > 0 {
			b.WriteByte('+')
		}
		child.render(b)
	}
}

// MapTree rebuilds a tree with every node value transformed by f, preserving
// shape and child order.
func MapTree[A, B any](t *ObjectTree[A], f func(A) B) *ObjectTree[B] {
	out := &ObjectTree[B]{Root: f(t.Root)}
	for _, child := range t.Children {
		out.Children = append(out.Children, MapTree(child, f))
	}
	return out
}

// Predicate is a single filter condition: identifier, operator, literal.
type Predicate[T any] struct {
	Identifier T
	Operator   Operator
	Value      Literal
}

func (p Predicate[T]) String() string {
	return fmt.Sprintf("%v%s%s", p.Identifier, p.Operator, p.Value)
}

// Query is a parsed shorthand query: an object tree and zero or more
// predicates. O is the object node type and P the predicate identifier type;
// parsing produces Query[string, string], resolution narrows O to a schema
// ID while predicate identifiers deliberately stay raw.
type Query[O, P any] struct {
	Object     *ObjectTree[O]
	Predicates []Predicate[P]
}

// String renders the query back to shorthand. The output is structurally
// equivalent to the parsed input, though insignificant whitespace is
// normalized away.
func (q *Query[O, P]) String() string {
	var b strings.Builder
	q.Object.render(&b)
	for _, p := range q.Predicates {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}
