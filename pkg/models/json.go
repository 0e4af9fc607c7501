package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// JSON is an opaque JSON document passed through to the API unchanged.
// It is used for integration credentials/metadata and webhook test payloads.
type JSON json.RawMessage

// NewJSON marshals v into a JSON value.
func NewJSON(v any) (JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON value: %w", err)
	}
	return JSON(b), nil
}

// ParseJSON validates raw and returns it as a JSON value.
func ParseJSON(raw string) (JSON, error) {
	if !json.Valid([]byte(raw)) {
		return nil, errors.New("invalid JSON document")
	}
	return JSON(raw), nil
}

// MarshalJSON implements json.Marshaler interface.
func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return errors.New("JSON: UnmarshalJSON on nil pointer")
	}
	*j = append((*j)[0:0], data...)
	return nil
}

// Decode unmarshals the document into v.
func (j JSON) Decode(v any) error {
	if len(j) == 0 {
		return errors.New("JSON: empty document")
	}
	return json.Unmarshal(j, v)
}

// String returns the JSON as a string.
func (j JSON) String() string {
	return string(j)
}
