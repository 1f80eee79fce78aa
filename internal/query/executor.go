// Package query runs parsed query language commands against a store.
package query

import (
	"fmt"

	"github.com/tobsdb/invdb/internal/parser"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/internal/store"
	"github.com/tobsdb/invdb/internal/types"
	"github.com/tobsdb/invdb/pkg"
)

type Executor struct {
	store *store.Store
	// Save the store after every command that changed it.
	SaveOnWrite bool
}

func NewExecutor(s *store.Store) *Executor {
	return &Executor{store: s}
}

// Execute parses and runs one line. Parse failures are *parser.ParseError;
// anything else comes from the store.
func (e *Executor) Execute(line string) (Result, error) {
	cmd, err := parser.Parse(line)
	if err != nil {
		pkg.DebugLog("parse failed;", err)
		return Result{}, err
	}
	return e.Run(cmd)
}

func (e *Executor) Run(cmd parser.Command) (Result, error) {
	var res Result
	var err error

	switch cmd := cmd.(type) {
	case parser.HelpCmd:
		return NewResult(ResultHelp, 0, HelpText), nil
	case parser.SelectCmd:
		res, err = e.runSelect(cmd)
	case parser.InsertCmd:
		res, err = e.runInsert(cmd)
	case parser.DeleteCmd:
		res, err = e.runDelete(cmd)
	case parser.UpdateCmd:
		res, err = e.runUpdate(cmd)
	default:
		return Result{}, fmt.Errorf("Unsupported command: %s", cmd.Keyword())
	}
	if err != nil {
		return res, err
	}

	if e.SaveOnWrite && !res.Kind.IsReadOnly() && res.Count > 0 {
		if err := e.store.Save(); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (e *Executor) runSelect(cmd parser.SelectCmd) (Result, error) {
	var records []record.Record
	var err error
	if cond, ok := cmd.Filter.Get(); ok {
		records, err = e.store.SearchOp(cond.Field, cond.Value, cond.Op)
	} else {
		records = e.store.All()
	}

	res := NewResult(ResultRecords, len(records), fmt.Sprintf("%d record(s)", len(records)))
	res.Records = records
	return res, err
}

func (e *Executor) runInsert(cmd parser.InsertCmd) (Result, error) {
	r := cmd.Record()
	added, err := e.store.AddRecord(r)
	if !added {
		return NewResult(ResultInserted, 0, "Record not added: invalid fields or duplicate id"), err
	}
	return NewResult(ResultInserted, 1, fmt.Sprintf("Added record %d", r.Id)), err
}

func (e *Executor) runDelete(cmd parser.DeleteCmd) (Result, error) {
	var count int
	var err error

	cond, ok := cmd.Where.Get()
	switch {
	case !ok:
		count, err = e.store.DeleteAll()
	case cond.Op == types.OpEqual:
		count, err = e.store.DeleteWhere(cond.Field, cond.Value)
	default:
		count, err = e.store.DeleteWhereOp(cond.Field, cond.Value, cond.Op)
	}
	return NewResult(ResultDeleted, count, fmt.Sprintf("Deleted %d record(s)", count)), err
}

func (e *Executor) runUpdate(cmd parser.UpdateCmd) (Result, error) {
	count, err := e.store.Update(cmd.Set.Field, cmd.Set.Value, cmd.Where.Field, cmd.Where.Value)
	return NewResult(ResultUpdated, count, fmt.Sprintf("Updated %d record(s)", count)), err
}
