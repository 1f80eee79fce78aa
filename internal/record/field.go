package record

import (
	"cmp"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tobsdb/invdb/internal/types"
)

// Field is the closed set of addressable record fields.
type Field int

const (
	FieldInvalid Field = iota
	FieldId
	FieldName
	FieldQuantity
	FieldPrice
	FieldSupplier
)

// FIELDS is in persisted column order.
var FIELDS = []Field{FieldId, FieldName, FieldQuantity, FieldPrice, FieldSupplier}

type fieldDesc struct {
	name string
	kind types.Kind
	get  func(r *Record) Value
	set  func(r *Record, v Value)
}

var field_descs = map[Field]fieldDesc{
	FieldId: {
		"id", types.KindInt,
		func(r *Record) Value { return IntValue(r.Id) },
		func(r *Record, v Value) { r.Id = v.AsInt() },
	},
	FieldName: {
		"name", types.KindText,
		func(r *Record) Value { return TextValue(r.Name) },
		func(r *Record, v Value) { r.Name = v.String() },
	},
	FieldQuantity: {
		"quantity", types.KindInt,
		func(r *Record) Value { return IntValue(r.Quantity) },
		func(r *Record, v Value) { r.Quantity = v.AsInt() },
	},
	FieldPrice: {
		"price", types.KindFloat,
		func(r *Record) Value { return FloatValue(r.Price) },
		func(r *Record, v Value) { r.Price = v.AsFloat() },
	},
	FieldSupplier: {
		"supplier", types.KindText,
		func(r *Record) Value { return TextValue(r.Supplier) },
		func(r *Record, v Value) { r.Supplier = v.String() },
	},
}

// ParseField resolves a field name case-insensitively. Unknown names give
// FieldInvalid, which matches no record.
func ParseField(name string) Field {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range FIELDS {
		if field_descs[f].name == name {
			return f
		}
	}
	return FieldInvalid
}

func (f Field) String() string {
	if desc, ok := field_descs[f]; ok {
		return desc.name
	}
	return "invalid"
}

func (f Field) IsValid() bool {
	_, ok := field_descs[f]
	return ok
}

func (f Field) Kind() types.Kind { return field_descs[f].kind }

// Indexed reports whether the store keeps a secondary index for f.
func (f Field) Indexed() bool {
	return f == FieldName || f == FieldSupplier
}

func (f Field) position() int {
	for i, field := range FIELDS {
		if field == f {
			return i
		}
	}
	return -1
}

func (f Field) Get(r *Record) Value {
	desc, ok := field_descs[f]
	if !ok {
		return Value{}
	}
	return desc.get(r)
}

// Set writes v into r, converting it to the field's type. No validation
// is applied.
func (f Field) Set(r *Record, v Value) bool {
	desc, ok := field_descs[f]
	if !ok {
		return false
	}
	desc.set(r, v)
	return true
}

var errNotANumber = errors.New("not a number")

// ParseValue converts a literal into the field's type. id and quantity are
// integers, price is a float; text fields take the literal as is.
func (f Field) ParseValue(text string) (Value, error) {
	switch f.Kind() {
	case types.KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return Value{}, &ValueError{f, text, err}
		}
		return IntValue(n), nil
	case types.KindFloat:
		n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return Value{}, &ValueError{f, text, err}
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return Value{}, &ValueError{f, text, errNotANumber}
		}
		return FloatValue(n), nil
	}
	return TextValue(text), nil
}

// Compare orders the field value of r against v.
func (f Field) Compare(r *Record, v Value) int {
	current := f.Get(r)
	switch f.Kind() {
	case types.KindInt:
		if v.Kind == types.KindInt || v.Kind == types.KindText {
			return cmp.Compare(current.Int, v.AsInt())
		}
		return cmp.Compare(float64(current.Int), v.AsFloat())
	case types.KindFloat:
		return cmp.Compare(current.Float, v.AsFloat())
	}
	return strings.Compare(current.Text, v.String())
}

// Match evaluates "f op v" against r. Text fields only support equality and
// ignore op; FieldInvalid never matches.
func (f Field) Match(r *Record, op types.Operator, v Value) bool {
	switch kind := f.Kind(); {
	case kind.IsNumeric():
		return op.Holds(f.Compare(r, v))
	case kind == types.KindText:
		return f.Compare(r, v) == 0
	}
	return false
}

// Less orders two records by f, ties broken by id.
func (f Field) Less(a, b *Record) bool {
	if c := f.Compare(a, f.Get(b)); c != 0 {
		return c < 0
	}
	return a.Id < b.Id
}
