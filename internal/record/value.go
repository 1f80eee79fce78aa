package record

import (
	"fmt"
	"strconv"

	"github.com/tobsdb/invdb/internal/types"
)

// Value is a typed literal addressed to a Field.
type Value struct {
	Kind  types.Kind
	Int   int64
	Float float64
	Text  string
}

func IntValue(v int64) Value     { return Value{Kind: types.KindInt, Int: v} }
func FloatValue(v float64) Value { return Value{Kind: types.KindFloat, Float: v} }
func TextValue(v string) Value   { return Value{Kind: types.KindText, Text: v} }

func (v Value) AsInt() int64 {
	switch v.Kind {
	case types.KindInt:
		return v.Int
	case types.KindFloat:
		return int64(v.Float)
	}
	n, _ := strconv.ParseInt(v.Text, 10, 64)
	return n
}

func (v Value) AsFloat() float64 {
	switch v.Kind {
	case types.KindInt:
		return float64(v.Int)
	case types.KindFloat:
		return v.Float
	}
	n, _ := strconv.ParseFloat(v.Text, 64)
	return n
}

func (v Value) String() string {
	switch v.Kind {
	case types.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case types.KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	}
	return v.Text
}

// ValueError reports a literal that could not be converted to its field's type.
type ValueError struct {
	Field Field
	Text  string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("Invalid value for %s: %q", e.Field, e.Text)
}

func (e *ValueError) Unwrap() error { return e.Err }
