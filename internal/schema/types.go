// Package schema models database schemas: tables, views, columns and the
// foreign keys between them, plus usage scores for resolution ranking.
package schema

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/aidanlsb/sq/internal/arena"
	"github.com/aidanlsb/sq/internal/score"
)

// DataType is the data type of a column. Only the types the resolver cares
// about are modeled; everything else maps to TypeUnknown.
type DataType int

const (
	TypeUnknown DataType = iota
	TypeInteger
)

func (d DataType) String() string {
	switch d {
	case TypeInteger:
		return "int"
	default:
		return "unknown"
	}
}

// ParseDataType maps a type name from a driver or fixture to a DataType.
// Unrecognized names are TypeUnknown, not an error.
func ParseDataType(s string) DataType {
	switch s {
	case "int", "integer", "INT", "INTEGER":
		return TypeInteger
	default:
		return TypeUnknown
	}
}

// MarshalJSON encodes the type by name.
func (d DataType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes the type by name.
func (d *DataType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = ParseDataType(s)
	return nil
}

// Column is a single column of a table or view.
type Column struct {
	Name     string   `json:"name"`
	Type     DataType `json:"type"`
	Nullable bool     `json:"nullable"`
}

// ColumnID identifies a Column within a Schema.
type ColumnID = arena.ID[Column]

// ObjectID identifies an Object within a Schema.
type ObjectID = arena.ID[Object]

// ForeignKey is a directed edge from a column of the declaring table to a
// column of another object.
type ForeignKey struct {
	Column    ColumnID `json:"column"`
	RefObject ObjectID `json:"refObject"`
	RefColumn ColumnID `json:"refColumn"`
}

// ObjectKind distinguishes tables from views.
type ObjectKind int

const (
	KindTable ObjectKind = iota
	KindView
)

func (k ObjectKind) String() string {
	if k == KindView {
		return "view"
	}
	return "table"
}

// MarshalJSON encodes the kind by name.
func (k ObjectKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes the kind by name.
func (k *ObjectKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "view":
		*k = KindView
	case "table":
		*k = KindTable
	default:
		return fmt.Errorf("unknown object kind %q", s)
	}
	return nil
}

// Object is a table or view. Only tables declare foreign keys; a view's
// ForeignKeys is always nil, so views never participate in ancestor
// constraints.
type Object struct {
	Kind        ObjectKind   `json:"kind"`
	Name        string       `json:"name"`
	Columns     []ColumnID   `json:"columns"`
	ForeignKeys []ForeignKey `json:"foreignKeys,omitempty"`
}

// Schema owns the column and object arenas and the score tables for both
// entity kinds. Object and column scores are kept in separately-typed tables
// so the two ID spaces cannot be mixed up.
//
// Entity data is immutable once built; the score tables are the only part
// mutated during resolution.
type Schema struct {
	objects arena.Arena[Object]
	columns arena.Arena[Column]

	objectScores score.Table[Object]
	columnScores score.Table[Column]
}

// AddColumn allocates a column and returns its ID.
func (s *Schema) AddColumn(c Column) ColumnID {
	return s.columns.Alloc(c)
}

// AddTable allocates a table object and returns its ID.
func (s *Schema) AddTable(name string, columns []ColumnID, foreignKeys []ForeignKey) ObjectID {
	return s.objects.Alloc(Object{
		Kind:        KindTable,
		Name:        name,
		Columns:     columns,
		ForeignKeys: foreignKeys,
	})
}

// AddView allocates a view object and returns its ID. Views carry no foreign
// keys.
func (s *Schema) AddView(name string, columns []ColumnID) ObjectID {
	return s.objects.Alloc(Object{
		Kind:    KindView,
		Name:    name,
		Columns: columns,
	})
}

// Object looks up an object by ID.
func (s *Schema) Object(id ObjectID) (*Object, bool) {
	return s.objects.Get(id)
}

// Column looks up a column by ID.
func (s *Schema) Column(id ColumnID) (*Column, bool) {
	return s.columns.Get(id)
}

// Objects iterates over all objects in allocation order.
func (s *Schema) Objects() iter.Seq2[ObjectID, *Object] {
	return s.objects.All()
}

// Columns iterates over all columns in allocation order.
func (s *Schema) Columns() iter.Seq2[ColumnID, *Column] {
	return s.columns.All()
}

// NumObjects returns the number of objects.
func (s *Schema) NumObjects() int { return s.objects.Len() }

// NumColumns returns the number of columns.
func (s *Schema) NumColumns() int { return s.columns.Len() }

// ObjectScores returns the score table for objects.
func (s *Schema) ObjectScores() *score.Table[Object] {
	return &s.objectScores
}

// ColumnScores returns the score table for columns.
func (s *Schema) ColumnScores() *score.Table[Column] {
	return &s.columnScores
}
