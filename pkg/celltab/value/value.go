// Package value defines the typed cell value used by the table and its
// conversions to and from CSV field text.
package value

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindAbsent marks an empty cell. It is the zero Value.
	KindAbsent Kind = iota
	// KindString holds arbitrary text.
	KindString
	// KindNumber holds a finite float64.
	KindNumber
	// KindBool holds a boolean.
	KindBool
)

// Value is a closed variant over {absent, string, number, boolean}.
// The zero Value is absent.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// Absent returns the empty-cell marker.
func Absent() Value { return Value{} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is the empty-cell marker.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Str returns the string payload; zero unless Kind is KindString.
func (v Value) Str() string { return v.str }

// Num returns the numeric payload; zero unless Kind is KindNumber.
func (v Value) Num() float64 { return v.num }

// B returns the boolean payload; false unless Kind is KindBool.
func (v Value) B() bool { return v.b }

// Coerce types a raw CSV field. The empty string becomes absent, a strict
// signed decimal becomes a number, "true"/"false" (any case) becomes a
// boolean, and anything else stays a string. The numeric check runs before
// the boolean check; "NaN" and "Infinity" fail the decimal grammar and fall
// through to string.
func Coerce(field string) Value {
	if field == "" {
		return Absent()
	}
	if isDecimal(field) {
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return Number(f)
		}
	}
	switch strings.ToLower(field) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return String(field)
}

// Render converts a value to its canonical field text. Absent renders as the
// empty string; numbers render in plain decimal notation so that Coerce
// recovers them as numbers.
func (v Value) Render() string {
	switch v.kind {
	case KindAbsent:
		return ""
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// MarshalJSON renders absent as null and the other variants as their native
// JSON forms.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindAbsent:
		return []byte("null"), nil
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return json.Marshal(v.str)
	}
}

// isDecimal reports whether s matches -?digits(.digits)?. Exponents, signs
// other than a single leading minus, and special values are rejected so only
// plain finite decimals coerce to numbers.
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	start = i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > start && i == len(s)
}
