// Package record defines the inventory line item and the closed set of
// fields the store and the query language can address.
package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	FieldSeparator = ";"
	field_count    = 5
)

// Record is one inventory line item. It has no identity beyond Id.
type Record struct {
	Id       int64
	Name     string
	Quantity int64
	Price    float64
	Supplier string
}

func New(id int64, name string, quantity int64, price float64, supplier string) Record {
	return Record{Id: id, Name: name, Quantity: quantity, Price: price, Supplier: supplier}
}

type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the insert-time rules. Mutations after insert do not
// re-run it.
func (r Record) Validate() error {
	if r.Id <= 0 {
		return &ValidationError{FieldId, "must be greater than 0"}
	}
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{FieldName, "cannot be blank"}
	}
	if r.Quantity < 0 {
		return &ValidationError{FieldQuantity, "cannot be negative"}
	}
	if r.Price < 0 || math.IsNaN(r.Price) {
		return &ValidationError{FieldPrice, "cannot be negative"}
	}
	if strings.TrimSpace(r.Supplier) == "" {
		return &ValidationError{FieldSupplier, "cannot be blank"}
	}
	return nil
}

// String renders the persisted line form: id;name;quantity;price;supplier.
// Text fields are not escaped.
func (r Record) String() string {
	return strings.Join([]string{
		strconv.FormatInt(r.Id, 10),
		r.Name,
		strconv.FormatInt(r.Quantity, 10),
		strconv.FormatFloat(r.Price, 'f', -1, 64),
		r.Supplier,
	}, FieldSeparator)
}

// ParseLine is the inverse of String. A ';' inside a text field produces
// the wrong number of parts and fails here.
func ParseLine(line string) (Record, error) {
	parts := strings.Split(strings.TrimRight(line, "\r"), FieldSeparator)
	if len(parts) != field_count {
		return Record{}, fmt.Errorf("expected %d fields, got %d", field_count, len(parts))
	}

	r := Record{Name: parts[1], Supplier: parts[4]}
	for _, f := range []Field{FieldId, FieldQuantity, FieldPrice} {
		v, err := f.ParseValue(parts[f.position()])
		if err != nil {
			return Record{}, err
		}
		f.Set(&r, v)
	}
	return r, nil
}
