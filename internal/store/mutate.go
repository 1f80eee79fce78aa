package store

import (
	"fmt"
	"math"

	"github.com/tobsdb/invdb/internal/audit"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/internal/types"
	"github.com/tobsdb/invdb/pkg"
)

// AddRecord inserts a validated copy of r. It returns false, with no
// mutation, when r fails validation or its id is already taken.
func (s *Store) AddRecord(r record.Record) (bool, error) {
	if err := r.Validate(); err != nil {
		pkg.DebugLog("rejected record;", err)
		return false, nil
	}

	row := r
	if !s.table.Insert(&row) {
		pkg.DebugLog("rejected duplicate id", r.Id)
		return false, nil
	}
	s.indexRecord(&row)

	return true, s.commit(audit.EventAdd, describe(&row), Change{Kind: ChangeAdd, Ids: []int64{row.Id}})
}

// DeleteById returns false, with no log entry or notification, when id is
// not stored.
func (s *Store) DeleteById(id int64) (bool, error) {
	row, ok := s.table.Get(id)
	if !ok {
		return false, nil
	}

	s.table.Delete(id)
	s.unindexRecord(row)

	return true, s.commit(audit.EventDeleteById, fmt.Sprintf("id=%d", id), Change{Kind: ChangeDelete, Ids: []int64{id}})
}

// DeleteWhere removes every record whose field equals value.
func (s *Store) DeleteWhere(field record.Field, value record.Value) (int, error) {
	return s.DeleteWhereOp(field, value, types.OpEqual)
}

// DeleteWhereOp removes every record matching "field op value", one
// DeleteById at a time. It stops at the first error and reports how many
// were removed.
func (s *Store) DeleteWhereOp(field record.Field, value record.Value, op types.Operator) (int, error) {
	matched := s.scan(field, op, value)

	removed := 0
	for _, row := range matched {
		ok, err := s.DeleteById(row.Id)
		if ok {
			removed++
		}
		if err != nil {
			return removed, err
		}
	}
	return removed, nil
}

// DeleteAll clears the table and both indexes.
func (s *Store) DeleteAll() (int, error) {
	removed := s.table.Len()
	s.table = NewTable()
	s.name_index.Clear()
	s.supplier_index.Clear()

	details := fmt.Sprintf("count=%d", removed)
	if removed == 0 {
		return 0, s.appendLog(audit.EventDeleteAll, details)
	}
	return removed, s.commit(audit.EventDeleteAll, details, Change{Kind: ChangeClear})
}

// Supply adds amount to the stock of id. Negative amounts, and amounts that
// would overflow the quantity, are rejected so quantity can never go below
// zero.
func (s *Store) Supply(id int64, amount int64) (bool, error) {
	row, ok := s.table.Get(id)
	if !ok || amount < 0 {
		return false, nil
	}
	if amount > math.MaxInt64-row.Quantity {
		pkg.DebugLog("supply rejected; quantity overflow for id", id)
		return false, nil
	}

	row.Quantity += amount
	details := fmt.Sprintf("id=%d amount=%d quantity=%d", id, amount, row.Quantity)
	return true, s.commit(audit.EventSupply, details, Change{Kind: ChangeSupply, Ids: []int64{id}})
}

// Sell takes amount out of the stock of id. It returns false, with no
// mutation, when id is missing or there is not enough stock.
func (s *Store) Sell(id int64, amount int64) (bool, error) {
	row, ok := s.table.Get(id)
	if !ok || amount < 0 || row.Quantity < amount {
		return false, nil
	}

	row.Quantity -= amount
	details := fmt.Sprintf("id=%d amount=%d quantity=%d", id, amount, row.Quantity)
	return true, s.commit(audit.EventSell, details, Change{Kind: ChangeSell, Ids: []int64{id}})
}

// Update sets field to value on every record whose where_field equals
// where_value and returns how many were changed. Validation is not re-run.
//
// Changing name or supplier does not touch the secondary indexes unless
// Settings.RefreshIndexesOnUpdate is set. Changing id moves the record to the
// new key (indexes included); a record whose new id is already taken is
// skipped.
func (s *Store) Update(field record.Field, value record.Value, where_field record.Field, where_value record.Value) (int, error) {
	matched := s.scan(where_field, types.OpEqual, where_value)

	updated_ids := []int64{}
	if field.IsValid() {
		for _, row := range matched {
			switch {
			case field == record.FieldId:
				if !s.rekey(row, value.AsInt()) {
					continue
				}
			case field.Indexed() && s.settings.RefreshIndexesOnUpdate:
				s.unindexRecord(row)
				field.Set(row, value)
				s.indexRecord(row)
			default:
				field.Set(row, value)
			}
			updated_ids = append(updated_ids, row.Id)
		}
	}

	count := len(updated_ids)
	details := fmt.Sprintf("SET %s=%s WHERE %s=%s count=%d",
		field, value, where_field, where_value, count)
	if count == 0 {
		return 0, s.appendLog(audit.EventUpdate, details)
	}
	return count, s.commit(audit.EventUpdate, details, Change{Kind: ChangeUpdate, Ids: updated_ids})
}

func (s *Store) rekey(row *record.Record, id int64) bool {
	if row.Id == id {
		return true
	}
	if s.table.Has(id) {
		pkg.DebugLog("update skipped; id", id, "already exists")
		return false
	}

	s.table.Delete(row.Id)
	s.unindexRecord(row)
	row.Id = id
	s.table.Insert(row)
	s.indexRecord(row)
	return true
}
