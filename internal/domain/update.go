package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// Fields is a partial-update payload. A key that is absent and a key that is
// present with a JSON null are different states: absent means "leave the
// column untouched", null means "clear the relationship / value".
type Fields map[string]json.RawMessage

// DecodeFields parses a request body into a Fields map.
func DecodeFields(body []byte) (Fields, error) {
	var f Fields
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, NewValidationError("invalid request body")
	}
	return f, nil
}

// Has reports whether the key was present in the payload, null or not.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// IsNull reports whether the key was present with an explicit JSON null.
func (f Fields) IsNull(key string) bool {
	raw, ok := f[key]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (f Fields) Uint(key string) (*uint, error) {
	if f.IsNull(key) {
		return nil, nil
	}
	var v uint
	if err := json.Unmarshal(f[key], &v); err != nil {
		return nil, NewValidationError("field %s must be an integer", key)
	}
	return &v, nil
}

func (f Fields) Int(key string) (*int, error) {
	if f.IsNull(key) {
		return nil, nil
	}
	var v int
	if err := json.Unmarshal(f[key], &v); err != nil {
		return nil, NewValidationError("field %s must be an integer", key)
	}
	return &v, nil
}

func (f Fields) Float(key string) (*float64, error) {
	if f.IsNull(key) {
		return nil, nil
	}
	var v float64
	if err := json.Unmarshal(f[key], &v); err != nil {
		return nil, NewValidationError("field %s must be a number", key)
	}
	return &v, nil
}

func (f Fields) String(key string) (*string, error) {
	if f.IsNull(key) {
		return nil, nil
	}
	var v string
	if err := json.Unmarshal(f[key], &v); err != nil {
		return nil, NewValidationError("field %s must be a string", key)
	}
	return &v, nil
}

func (f Fields) Bool(key string) (*bool, error) {
	if f.IsNull(key) {
		return nil, nil
	}
	var v bool
	if err := json.Unmarshal(f[key], &v); err != nil {
		return nil, NewValidationError("field %s must be a boolean", key)
	}
	return &v, nil
}

func (f Fields) Time(key string) (*time.Time, error) {
	if f.IsNull(key) {
		return nil, nil
	}
	var v time.Time
	if err := json.Unmarshal(f[key], &v); err != nil {
		return nil, NewValidationError("field %s must be an RFC3339 timestamp", key)
	}
	return &v, nil
}
