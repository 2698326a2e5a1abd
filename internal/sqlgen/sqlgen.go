// Package sqlgen renders resolved shorthand queries as SQL text. It consumes
// resolver output; nothing here executes against a database.
package sqlgen

import (
	"fmt"
	"strings"
)

// Op is a SQL binary operator.
type Op int

const (
	OpEq Op = iota
	OpNeq
	OpGt
	OpGte
	OpLt
	OpLte
	OpAnd
	OpOr
	OpLike
)

func (op Op) String() string {
	switch op {
	case OpNeq:
		return "<>"
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpLike:
		return "LIKE"
	default:
		return "="
	}
}

// FieldRef names a column, optionally qualified by a table alias.
type FieldRef struct {
	Table string // alias; empty renders the field unqualified
	Field string
}

// Expr is a SQL expression node.
type Expr interface {
	exprNode()
}

// Null is the NULL literal.
type Null struct{}

// StringLit is a quoted string literal.
type StringLit struct {
	Value string
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// Ref is a column reference.
type Ref struct {
	FieldRef
}

// Binary is a binary operation.
type Binary struct {
	Left  Expr
	Op    Op
	Right Expr
}

func (Null) exprNode()      {}
func (StringLit) exprNode() {}
func (IntLit) exprNode()    {}
func (Ref) exprNode()       {}
func (Binary) exprNode()    {}

// TableRef is an aliased table or view in a FROM clause.
type TableRef struct {
	Name  string
	Alias string
}

// JoinType selects the SQL join keyword.
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinOuter
)

func (j JoinType) String() string {
	switch j {
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinOuter:
		return "OUTER JOIN"
	default:
		return "INNER JOIN"
	}
}

// Join is one joined table with its ON condition.
type Join struct {
	Type  JoinType
	Table TableRef
	On    Expr
}

// Query is a renderable SELECT statement.
type Query struct {
	Projection []FieldRef
	From       TableRef
	Joins      []Join
	Where      Expr
}

// Dialect hooks identifier quoting. The zero Dialect emits identifiers bare.
type Dialect struct {
	// QuoteIdent, when set, wraps identifiers (table and column names).
	QuoteIdent func(string) string
}

func (d Dialect) ident(name string) string {
	if d.QuoteIdent != nil {
		return d.QuoteIdent(name)
	}
	return name
}

// Render renders the query as a single SQL string.
func (d Dialect) Render(q *Query) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(d.projection(q.Projection))
	b.WriteString(" FROM ")
	b.WriteString(d.tableRef(q.From))
	for _, join := range q.Joins {
		b.WriteByte(' ')
		b.WriteString(join.Type.String())
		b.WriteByte(' ')
		b.WriteString(d.tableRef(join.Table))
		b.WriteString(" ON ")
		b.WriteString(d.Expr(join.On))
	}
	if q.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(d.Expr(q.Where))
	}
	return b.String()
}

func (d Dialect) projection(fields []FieldRef) string {
	if len(fields) == 0 {
		return "*"
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = d.fieldRef(f)
	}
	return strings.Join(parts, ", ")
}

func (d Dialect) tableRef(t TableRef) string {
	if t.Alias == "" || t.Alias == t.Name {
		return d.ident(t.Name)
	}
	return d.ident(t.Name) + " AS " + d.ident(t.Alias)
}

func (d Dialect) fieldRef(f FieldRef) string {
	if f.Table == "" {
		return d.ident(f.Field)
	}
	return d.ident(f.Table) + "." + d.ident(f.Field)
}

// Expr renders one expression.
func (d Dialect) Expr(e Expr) string {
	switch e := e.(type) {
	case Null:
		return "NULL"
	case StringLit:
		return "'" + strings.ReplaceAll(e.Value, "'", "''") + "'"
	case IntLit:
		return fmt.Sprintf("%d", e.Value)
	case Ref:
		return d.fieldRef(e.FieldRef)
	case Binary:
		return d.Expr(e.Left) + " " + e.Op.String() + " " + d.Expr(e.Right)
	default:
		return ""
	}
}
