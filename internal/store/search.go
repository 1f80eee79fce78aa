package store

import (
	"fmt"
	"sort"

	"github.com/tobsdb/invdb/internal/audit"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/internal/types"
	"github.com/tobsdb/invdb/pkg"
)

// scan is the linear filter every non-indexed lookup goes through.
func (s *Store) scan(field record.Field, op types.Operator, value record.Value) []*record.Record {
	if !field.IsValid() {
		return []*record.Record{}
	}
	return pkg.Filter(s.table.Rows(), func(row *record.Record) bool {
		return field.Match(row, op, value)
	})
}

// Search is an exact-match lookup. id goes straight to the table, name and
// supplier go through their index, price and quantity scan the table.
// Unknown fields find nothing. Every call is logged.
func (s *Store) Search(field record.Field, value record.Value) ([]record.Record, error) {
	found := []record.Record{}

	switch {
	case field == record.FieldId:
		if row, ok := s.table.Get(value.AsInt()); ok {
			found = append(found, *row)
		}
	case field.Indexed():
		for _, id := range s.Index(field).Lookup(value.String()) {
			// ids left behind by a stale index entry may no longer exist
			if row, ok := s.table.Get(id); ok {
				found = append(found, *row)
			}
		}
	default:
		found = copyRows(s.scan(field, types.OpEqual, value))
	}

	err := s.appendLog(audit.EventSearch, fmt.Sprintf("%s=%s found=%d", field, value, len(found)))
	return found, err
}

// SearchOp scans the table with op. Text fields compare by equality
// whatever op is.
func (s *Store) SearchOp(field record.Field, value record.Value, op types.Operator) ([]record.Record, error) {
	found := copyRows(s.scan(field, op, value))
	err := s.appendLog(audit.EventSearch, fmt.Sprintf("%s%s%s found=%d", field, op, value, len(found)))
	return found, err
}

// Sort returns every record ordered by field. Unknown fields sort by id.
func (s *Store) Sort(field record.Field, descending bool) ([]record.Record, error) {
	rows := s.All()
	if field.IsValid() {
		sort.SliceStable(rows, func(i, j int) bool {
			if descending {
				return field.Less(&rows[j], &rows[i])
			}
			return field.Less(&rows[i], &rows[j])
		})
	} else if descending {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	order := "asc"
	if descending {
		order = "desc"
	}
	err := s.appendLog(audit.EventSort, fmt.Sprintf("by=%s %s", field, order))
	return rows, err
}
