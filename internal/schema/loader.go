package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileSchema is the YAML representation of a fixture schema.
type fileSchema struct {
	Tables []fileTable `yaml:"tables"`
	Views  []fileView  `yaml:"views"`
}

type fileColumn struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
}

type fileForeignKey struct {
	Column     string `yaml:"column"`
	References string `yaml:"references"` // "object.column"
}

type fileTable struct {
	Name        string           `yaml:"name"`
	Columns     []fileColumn     `yaml:"columns"`
	ForeignKeys []fileForeignKey `yaml:"foreign_keys"`
}

type fileView struct {
	Name    string       `yaml:"name"`
	Columns []fileColumn `yaml:"columns"`
}

// LoadFile reads a YAML schema definition from disk.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse schema file %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a Schema from a YAML definition. Tables are allocated in file
// order, then views; foreign keys are wired in a second pass so they may
// reference tables declared later in the file.
func Parse(data []byte) (*Schema, error) {
	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	s := &Schema{}
	objectIDs := make(map[string]ObjectID)
	columnIDs := make(map[string]map[string]ColumnID)

	addColumns := func(owner string, cols []fileColumn) ([]ColumnID, error) {
		byName := make(map[string]ColumnID, len(cols))
		ids := make([]ColumnID, 0, len(cols))
		for _, c := range cols {
			if c.Name == "" {
				return nil, fmt.Errorf("%q: column with empty name", owner)
			}
			id := s.AddColumn(Column{
				Name:     c.Name,
				Type:     ParseDataType(c.Type),
				Nullable: c.Nullable,
			})
			byName[c.Name] = id
			ids = append(ids, id)
		}
		columnIDs[owner] = byName
		return ids, nil
	}

	for _, t := range doc.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("table with empty name")
		}
		if _, dup := objectIDs[t.Name]; dup {
			return nil, fmt.Errorf("duplicate object %q", t.Name)
		}
		cols, err := addColumns(t.Name, t.Columns)
		if err != nil {
			return nil, err
		}
		objectIDs[t.Name] = s.AddTable(t.Name, cols, nil)
	}

	for _, v := range doc.Views {
		if v.Name == "" {
			return nil, fmt.Errorf("view with empty name")
		}
		if _, dup := objectIDs[v.Name]; dup {
			return nil, fmt.Errorf("duplicate object %q", v.Name)
		}
		cols, err := addColumns(v.Name, v.Columns)
		if err != nil {
			return nil, err
		}
		objectIDs[v.Name] = s.AddView(v.Name, cols)
	}

	// Second pass: resolve foreign key references by name.
	for _, t := range doc.Tables {
		for _, fk := range t.ForeignKeys {
			local, ok := columnIDs[t.Name][fk.Column]
			if !ok {
				return nil, fmt.Errorf("table %q: foreign key from unknown column %q", t.Name, fk.Column)
			}
			refObject, refColumn, ok := strings.Cut(fk.References, ".")
			if !ok {
				return nil, fmt.Errorf("table %q: foreign key reference %q is not object.column", t.Name, fk.References)
			}
			refID, ok := objectIDs[refObject]
			if !ok {
				return nil, fmt.Errorf("table %q: foreign key to unknown object %q", t.Name, refObject)
			}
			refColID, ok := columnIDs[refObject][refColumn]
			if !ok {
				return nil, fmt.Errorf("table %q: foreign key to unknown column %q.%q", t.Name, refObject, refColumn)
			}

			obj, _ := s.Object(objectIDs[t.Name])
			obj.ForeignKeys = append(obj.ForeignKeys, ForeignKey{
				Column:    local,
				RefObject: refID,
				RefColumn: refColID,
			})
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
