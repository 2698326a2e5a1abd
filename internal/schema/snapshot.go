package schema

import "encoding/json"

// snapshot is the persisted form of a Schema. Arenas serialize as plain
// arrays, so a save/load round trip preserves allocation order and every
// issued ID stays valid.
type snapshot struct {
	Objects      json.RawMessage `json:"objects"`
	Columns      json.RawMessage `json:"columns"`
	ObjectScores json.RawMessage `json:"objectScores,omitempty"`
	ColumnScores json.RawMessage `json:"columnScores,omitempty"`
}

// MarshalJSON encodes the schema, including both score tables.
func (s *Schema) MarshalJSON() ([]byte, error) {
	objects, err := json.Marshal(s.objects)
	if err != nil {
		return nil, err
	}
	columns, err := json.Marshal(s.columns)
	if err != nil {
		return nil, err
	}
	objectScores, err := json.Marshal(&s.objectScores)
	if err != nil {
		return nil, err
	}
	columnScores, err := json.Marshal(&s.columnScores)
	if err != nil {
		return nil, err
	}

	return json.Marshal(snapshot{
		Objects:      objects,
		Columns:      columns,
		ObjectScores: objectScores,
		ColumnScores: columnScores,
	})
}

// UnmarshalJSON replaces the schema's contents with the decoded snapshot.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var doc snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if err := json.Unmarshal(doc.Objects, &s.objects); err != nil {
		return err
	}
	if err := json.Unmarshal(doc.Columns, &s.columns); err != nil {
		return err
	}
	if len(doc.ObjectScores) > 0 {
		if err := json.Unmarshal(doc.ObjectScores, &s.objectScores); err != nil {
			return err
		}
	}
	if len(doc.ColumnScores) > 0 {
		if err := json.Unmarshal(doc.ColumnScores, &s.columnScores); err != nil {
			return err
		}
	}
	return nil
}
