package jsonTypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JsonDocument is a raw json value stored in a jsonb column.
type JsonDocument []byte

func NewJsonDocument(value any) (JsonDocument, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshalling json document: %w", err)
	}
	return data, nil
}

func (d JsonDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}

func (d *JsonDocument) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append(JsonDocument(nil), s...)
	case string:
		*d = JsonDocument(s)
	default:
		return fmt.Errorf("cannot scan %T into json document", src)
	}
	return nil
}

// Decode unmarshals the document into target.
func (d JsonDocument) Decode(target any) error {
	return json.Unmarshal(d, target)
}

// IsObject reports whether the document holds a json object.
func (d JsonDocument) IsObject() bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(d, &obj) == nil && obj != nil
}

func (d JsonDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *JsonDocument) UnmarshalJSON(data []byte) error {
	*d = append(JsonDocument(nil), data...)
	return nil
}
