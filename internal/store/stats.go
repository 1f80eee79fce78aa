package store

import (
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/pkg"
)

func (s *Store) TotalRecords() int { return s.table.Len() }

func (s *Store) TotalQuantity() int64 {
	var total int64
	for _, row := range s.table.Rows() {
		total += row.Quantity
	}
	return total
}

// TotalValue is the sum of price*quantity over every record.
func (s *Store) TotalValue() float64 {
	var total float64
	for _, row := range s.table.Rows() {
		total += row.Price * float64(row.Quantity)
	}
	return total
}

// LowStockCount counts records with quantity strictly below threshold.
func (s *Store) LowStockCount(threshold int64) int {
	return len(pkg.Filter(s.table.Rows(), func(row *record.Record) bool {
		return row.Quantity < threshold
	}))
}

type SupplierTotal struct {
	Supplier string
	Quantity int64
	Value    float64
}

func (s *Store) supplierTotals() []SupplierTotal {
	totals := pkg.Map[string, *SupplierTotal]{}
	for _, row := range s.table.Rows() {
		t := totals.GetOrInit(row.Supplier, func() *SupplierTotal {
			return &SupplierTotal{Supplier: row.Supplier}
		})
		t.Quantity += row.Quantity
		t.Value += row.Price * float64(row.Quantity)
	}

	res := make([]SupplierTotal, 0, len(totals))
	for _, supplier := range pkg.SortedKeys(totals) {
		res = append(res, *totals.Get(supplier))
	}
	return res
}

// TopSuppliersByValue returns the n suppliers holding the most stock value.
// Ties keep supplier name order. A negative n returns all of them.
func (s *Store) TopSuppliersByValue(n int) []SupplierTotal {
	return pkg.TopN(s.supplierTotals(), n, func(a, b SupplierTotal) bool {
		return a.Value > b.Value
	})
}

func (s *Store) TopSuppliersByQuantity(n int) []SupplierTotal {
	return pkg.TopN(s.supplierTotals(), n, func(a, b SupplierTotal) bool {
		return a.Quantity > b.Quantity
	})
}

func (s *Store) TopItemsByPrice(n int) []record.Record {
	return pkg.TopN(s.All(), n, func(a, b record.Record) bool {
		return a.Price > b.Price
	})
}

func (s *Store) TopItemsByQuantity(n int) []record.Record {
	return pkg.TopN(s.All(), n, func(a, b record.Record) bool {
		return a.Quantity > b.Quantity
	})
}
