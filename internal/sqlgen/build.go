package sqlgen

import (
	"fmt"

	"github.com/aidanlsb/sq/internal/query"
	"github.com/aidanlsb/sq/internal/schema"
)

// Build turns a resolved query into a renderable SELECT. Each tree edge
// becomes an inner join on the foreign key that licensed the child during
// resolution; predicates become a conjunctive WHERE clause with their
// identifiers emitted unqualified, since column binding is not done yet.
func Build(s *schema.Schema, q *query.Query[schema.ObjectID, string]) (*Query, error) {
	b := &builder{schema: s}

	root, ok := s.Object(q.Object.Root)
	if !ok {
		return nil, fmt.Errorf("unknown object %v", q.Object.Root)
	}

	out := &Query{}
	rootAlias := b.nextAlias()
	out.From = TableRef{Name: root.Name, Alias: rootAlias}
	b.project(out, root, rootAlias)

	for _, child := range q.Object.Children {
		if err := b.join(out, q.Object.Root, rootAlias, child); err != nil {
			return nil, err
		}
	}

	out.Where = buildWhere(q.Predicates)
	return out, nil
}

type builder struct {
	schema  *schema.Schema
	aliases int
}

func (b *builder) nextAlias() string {
	alias := fmt.Sprintf("t%d", b.aliases)
	b.aliases++
	return alias
}

func (b *builder) project(out *Query, obj *schema.Object, alias string) {
	for _, colID := range obj.Columns {
		if col, ok := b.schema.Column(colID); ok {
			out.Projection = append(out.Projection, FieldRef{Table: alias, Field: col.Name})
		}
	}
}

// join emits the join for one parent/child edge and recurses into the
// child's own children.
func (b *builder) join(out *Query, parentID schema.ObjectID, parentAlias string, node *query.ObjectTree[schema.ObjectID]) error {
	child, ok := b.schema.Object(node.Root)
	if !ok {
		return fmt.Errorf("unknown object %v", node.Root)
	}
	parent, _ := b.schema.Object(parentID)

	fk, ok := edgeTo(child, parentID)
	if !ok {
		return fmt.Errorf("%q has no foreign key referencing %q", child.Name, parent.Name)
	}

	localCol, ok := b.schema.Column(fk.Column)
	if !ok {
		return fmt.Errorf("%q: foreign key column %v not found", child.Name, fk.Column)
	}
	refCol, ok := b.schema.Column(fk.RefColumn)
	if !ok {
		return fmt.Errorf("%q: referenced column %v not found", child.Name, fk.RefColumn)
	}

	alias := b.nextAlias()
	out.Joins = append(out.Joins, Join{
		Type:  JoinInner,
		Table: TableRef{Name: child.Name, Alias: alias},
		On: Binary{
			Left:  Ref{FieldRef{Table: alias, Field: localCol.Name}},
			Op:    OpEq,
			Right: Ref{FieldRef{Table: parentAlias, Field: refCol.Name}},
		},
	})
	b.project(out, child, alias)

	for _, grandchild := range node.Children {
		if err := b.join(out, node.Root, alias, grandchild); err != nil {
			return err
		}
	}
	return nil
}

func edgeTo(child *schema.Object, parent schema.ObjectID) (schema.ForeignKey, bool) {
	for _, fk := range child.ForeignKeys {
		if fk.RefObject == parent {
			return fk, true
		}
	}
	return schema.ForeignKey{}, false
}

func buildWhere(preds []query.Predicate[string]) Expr {
	var where Expr
	for _, p := range preds {
		cond := Binary{
			Left:  Ref{FieldRef{Field: p.Identifier}},
			Op:    compareOp(p.Operator),
			Right: literalExpr(p.Value),
		}
		if where == nil {
			where = cond
		} else {
			where = Binary{Left: where, Op: OpAnd, Right: cond}
		}
	}
	return where
}

func compareOp(op query.Operator) Op {
	switch op {
	case query.OpNe:
		return OpNeq
	case query.OpLt:
		return OpLt
	case query.OpLe:
		return OpLte
	case query.OpGt:
		return OpGt
	case query.OpGe:
		return OpGte
	default:
		return OpEq
	}
}

func literalExpr(l query.Literal) Expr {
	if l.Kind == query.LiteralInt {
		return IntLit{Value: l.Int}
	}
	return StringLit{Value: l.Str}
}
