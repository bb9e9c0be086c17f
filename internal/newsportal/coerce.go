package newsportal

import (
	"time"
	"unicode/utf16"
)

// Request values reach the API loosely typed. The functions below are the
// only place where they are turned into column values.
//
//	PinnedOnCreate   "true"                      -> true
//	                 anything else or absent     -> false
//	PinnedOnEdit     absent                      -> previous
//	                 "true", "1"                 -> true
//	                 anything else               -> false
//	ExpiryOnCreate   string longer than 10       -> parsed timestamp
//	                 anything else               -> NULL
//	ExpiryOnEdit     absent                      -> previous
//	                 null, ""                    -> NULL
//	                 string longer than 10       -> parsed timestamp
//	                 anything else               -> previous
//	ExpiryOnUpdate   absent, null, "", false, 0  -> NULL
//	                 anything else               -> parsed timestamp
//	ImageOnEdit      non-empty string            -> that string
//	                 anything else               -> previous
//	NullableText     absent, null, "", false, 0  -> NULL
//	                 anything else               -> textual value
//	ParsePositiveInt leading integer > 0         -> that integer
//	                 anything else               -> default

// minTimestampLen is the shortest raw value that is treated as a timestamp.
// Anything of 10 characters or less (a bare date, a stray word) is not.
const minTimestampLen = 11

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	time.DateOnly,
}

// textLen counts UTF-16 code units, the unit browsers and JSON clients measure
// string length in.
func textLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func PinnedOnCreate(f Field) bool {
	return f.Present && f.String && f.Value == "true"
}

func PinnedOnEdit(f Field, previous bool) bool {
	if !f.Present {
		return previous
	}

	return f.String && (f.Value == "true" || f.Value == "1")
}

func ExpiryOnCreate(f Field) (*time.Time, error) {
	if !f.String || textLen(f.Value) < minTimestampLen {
		return nil, nil
	}

	return ParseTimestamp(f.Value)
}

// ExpiryOnEdit keeps the previous value for short non-empty strings. The
// behaviour is inherited and kept until someone decides otherwise.
func ExpiryOnEdit(f Field, previous *time.Time) (*time.Time, error) {
	switch {
	case !f.Present:
		return previous, nil
	case f.Null, f.String && f.Value == "":
		return nil, nil
	case f.String && textLen(f.Value) >= minTimestampLen:
		return ParseTimestamp(f.Value)
	default:
		return previous, nil
	}
}

func ExpiryOnUpdate(f Field) (*time.Time, error) {
	if f.Falsy() {
		return nil, nil
	}

	return ParseTimestamp(f.Value)
}

func ImageOnEdit(f Field, previous string) string {
	if f.String && f.Value != "" {
		return f.Value
	}

	return previous
}

func NullableText(f Field) *string {
	if f.Falsy() {
		return nil
	}

	v := f.Value
	return &v
}

// ParseTimestamp accepts RFC 3339 and the zone-less layouts browsers send.
// Zone-less values are read in the server's local time.
func ParseTimestamp(raw string) (*time.Time, error) {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, time.Local)
		if err == nil {
			return &t, nil
		}
	}

	return nil, validationError("invalid expires_at timestamp: " + raw)
}

// ParsePositiveInt reads the leading integer of raw the way a lenient query
// parser would ("2abc" is 2). Missing, unparsable and non-positive values
// yield def.
func ParsePositiveInt(raw string, def int) int {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n') {
		i++
	}

	sign := 1
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		if raw[i] == '-' {
			sign = -1
		}
		i++
	}

	n, digits := 0, 0
	for ; i < len(raw) && raw[i] >= '0' && raw[i] <= '9'; i++ {
		n = n*10 + int(raw[i]-'0')
		digits++
		if n > 1<<31 {
			return def
		}
	}

	if digits == 0 || sign*n < 1 {
		return def
	}

	return n
}
