package newsportal

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Field is a loosely typed request value. It keeps track of whether the key
// was sent at all, whether it was null and whether it arrived as a string, so
// the coercion rules in coerce.go can tell these cases apart.
type Field struct {
	Present bool
	Null    bool
	String  bool
	// Value is the string contents for strings and the raw JSON literal otherwise.
	Value string
}

// Str returns a present string field.
func Str(s string) Field {
	return Field{Present: true, String: true, Value: s}
}

// Literal returns a present non-string field such as true or 42.
func Literal(raw string) Field {
	return Field{Present: true, Value: raw}
}

// Null returns a field explicitly set to null.
func Null() Field {
	return Field{Present: true, Null: true}
}

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = Field{Present: true}

	switch {
	case bytes.Equal(data, []byte("null")):
		f.Null = true
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.String = true
		f.Value = s
	default:
		f.Value = string(data)
	}

	return nil
}

// UnmarshalParam binds form and query values, which are always strings.
func (f *Field) UnmarshalParam(param string) error {
	*f = Str(param)
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	switch {
	case !f.Present, f.Null:
		return []byte("null"), nil
	case f.String:
		return json.Marshal(f.Value)
	default:
		return []byte(f.Value), nil
	}
}

// Falsy mirrors the loose truthiness the API has always applied:
// absent, null, "", false and any spelling of zero count as "not given".
func (f Field) Falsy() bool {
	if !f.Present || f.Null {
		return true
	}
	if f.String {
		return f.Value == ""
	}

	if f.Value == "false" {
		return true
	}
	n, err := strconv.ParseFloat(f.Value, 64)
	return err == nil && n == 0
}

// Int parses the field as a base 10 integer, from either a string or a number.
func (f Field) Int() (int, bool) {
	if f.Falsy() {
		return 0, false
	}

	n, err := strconv.Atoi(f.Value)
	if err != nil {
		return 0, false
	}

	return n, true
}
