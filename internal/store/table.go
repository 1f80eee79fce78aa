package store

import (
	"github.com/tobsdb/invdb/internal/record"
	sorted "github.com/tobshub/go-sortedmap"
)

// Table maps record id to the stored record, ordered by id.
//
// Values are held by pointer and mutated in place. A record's Id must not be
// changed while it is in the table: Delete it first, then Insert it again.
type Table struct {
	Map *sorted.SortedMap[int64, *record.Record]
}

func tableComparisonFunc(a, b *record.Record) bool {
	return a.Id < b.Id
}

func NewTable() *Table {
	return &Table{sorted.New[int64, *record.Record](0, tableComparisonFunc)}
}

func (t *Table) Get(id int64) (*record.Record, bool) {
	return t.Map.Get(id)
}

func (t *Table) Has(id int64) bool {
	return t.Map.Has(id)
}

// Insert adds r under r.Id and fails if the id is taken.
func (t *Table) Insert(r *record.Record) bool {
	return t.Map.Insert(r.Id, r)
}

// Upsert adds or replaces r under r.Id.
func (t *Table) Upsert(r *record.Record) {
	if !t.Map.Insert(r.Id, r) {
		t.Map.Replace(r.Id, r)
	}
}

func (t *Table) Delete(id int64) bool {
	return t.Map.Delete(id)
}

func (t *Table) Len() int {
	return t.Map.Len()
}

// Rows returns the stored records in ascending id order. The pointers are
// the table's own; callers outside the package only ever see copies.
func (t *Table) Rows() []*record.Record {
	rows := make([]*record.Record, 0, t.Len())
	if t.Len() == 0 {
		return rows
	}

	iterCh, err := t.Map.IterCh()
	if err != nil {
		return rows
	}
	defer iterCh.Close()

	for row := range iterCh.Records() {
		rows = append(rows, row.Val)
	}
	return rows
}
