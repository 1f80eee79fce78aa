package parser

import (
	"github.com/samber/mo"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/internal/types"
)

type Command interface {
	Keyword() string
}

// Condition is "field op value". Unknown field names resolve to
// record.FieldInvalid and match nothing.
type Condition struct {
	Field record.Field
	Op    types.Operator
	Value record.Value
	// field name as written
	Name string
}

// Assignment is "field=value" in INSERT and UPDATE SET.
type Assignment struct {
	Field record.Field
	Value record.Value
	Name  string
}

type SelectCmd struct {
	Filter mo.Option[Condition]
}

type InsertCmd struct {
	// known fields only, in input order
	Fields []Assignment
}

type UpdateCmd struct {
	Set   Assignment
	Where Condition
}

// DeleteCmd without Where clears the store.
type DeleteCmd struct {
	Where mo.Option[Condition]
}

type HelpCmd struct{}

func (SelectCmd) Keyword() string { return "SELECT" }
func (InsertCmd) Keyword() string { return "INSERT" }
func (UpdateCmd) Keyword() string { return "UPDATE" }
func (DeleteCmd) Keyword() string { return "DELETE" }
func (HelpCmd) Keyword() string   { return "HELP" }

// Record builds the record an INSERT describes. Omitted fields keep their
// zero value, which AddRecord then rejects where it matters.
func (cmd InsertCmd) Record() record.Record {
	r := record.Record{}
	for _, a := range cmd.Fields {
		a.Field.Set(&r, a.Value)
	}
	return r
}
