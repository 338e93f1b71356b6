package jsonTypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FieldValues maps template field keys to the values a user filled in.
type FieldValues map[string]string

func (v FieldValues) Value() (driver.Value, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v)
}

func (v *FieldValues) Scan(src any) error {
	var data []byte
	switch s := src.(type) {
	case nil:
		*v = FieldValues{}
		return nil
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("cannot scan %T into field values", src)
	}

	values := FieldValues{}
	err := json.Unmarshal(data, &values)
	if err != nil {
		return fmt.Errorf("unmarshalling field values: %w", err)
	}

	*v = values
	return nil
}

// Get returns the value for key and an empty string when it is not set.
func (v FieldValues) Get(key string) string {
	return v[key]
}
