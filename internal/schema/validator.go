package schema

import "fmt"

// Validate checks referential integrity: every column an object lists and
// every endpoint a foreign key names must exist in the schema. Drivers call
// this after building a schema, and snapshot loading calls it before trusting
// a cached document.
func (s *Schema) Validate() error {
	for _, obj := range s.Objects() {
		for _, col := range obj.Columns {
			if _, ok := s.Column(col); !ok {
				return fmt.Errorf("%s %q references unknown column %v", obj.Kind, obj.Name, col)
			}
		}

		if obj.Kind == KindView && len(obj.ForeignKeys) > 0 {
			return fmt.Errorf("view %q declares foreign keys", obj.Name)
		}

		for _, fk := range obj.ForeignKeys {
			if _, ok := s.Column(fk.Column); !ok {
				return fmt.Errorf("table %q: foreign key from unknown column %v", obj.Name, fk.Column)
			}
			ref, ok := s.Object(fk.RefObject)
			if !ok {
				return fmt.Errorf("table %q: foreign key to unknown object %v", obj.Name, fk.RefObject)
			}
			if _, ok := s.Column(fk.RefColumn); !ok {
				return fmt.Errorf("table %q: foreign key to unknown column %v of %q", obj.Name, fk.RefColumn, ref.Name)
			}
		}
	}
	return nil
}
