package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Patch is a partial-update payload. Values keep their raw JSON so that a
// key that is absent from the request can be told apart from a key that was
// explicitly set to null.
type Patch map[string]json.RawMessage

var errWrongType = errors.New("value has the wrong type")

func (p Patch) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// StringField decodes the value under key as a string. A JSON null decodes
// to nil. Any other non-string value is an error.
func (p Patch) StringField(key string) (*string, error) {
	raw, ok := p[key]
	if !ok {
		return nil, nil
	}
	if isJSONNull(raw) {
		return nil, nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, errWrongType
	}
	return &value, nil
}

// IntField decodes the value under key as an integer. JSON numbers are
// truncated toward zero, numeric strings are parsed; anything else,
// including null, is an error.
func (p Patch) IntField(key string) (int, error) {
	raw, ok := p[key]
	if !ok || isJSONNull(raw) {
		return 0, errWrongType
	}
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return int(number), nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		value, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return 0, errWrongType
		}
		return value, nil
	}
	return 0, errWrongType
}

// BoolField decodes the value under key as a genuine boolean. Truthy
// strings, numbers and null are not accepted.
func (p Patch) BoolField(key string) (bool, error) {
	raw, ok := p[key]
	if !ok || isJSONNull(raw) {
		return false, errWrongType
	}
	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, errWrongType
	}
	return value, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
