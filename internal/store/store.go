package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/tobsdb/invdb/internal/audit"
	"github.com/tobsdb/invdb/internal/crypt"
	"github.com/tobsdb/invdb/internal/index"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/pkg"
)

const (
	DefaultLowStockThreshold = 5
	DefaultLogTail           = 200
	AutoBackupSuffix         = ".bak"
)

type Settings struct {
	// Encrypted data file. Empty keeps the store in memory only.
	DataPath string
	// Audit log file. Empty disables the audit log.
	LogPath string
	// Defaults to crypt.Default().
	Cipher *crypt.Cipher
	// Re-index name/supplier when Update changes them. Off by default, which
	// keeps the historical stale-index behavior.
	RefreshIndexesOnUpdate bool
	// Audit log timestamps. Defaults to time.Now.
	Clock func() time.Time
}

type Store struct {
	Id       uuid.UUID
	settings Settings
	cipher   *crypt.Cipher
	log      *audit.Log

	table          *Table
	name_index     *index.Index
	supplier_index *index.Index

	listeners     []listenerEntry
	next_listener ListenerId
}

func NewStore(settings Settings) *Store {
	cipher := settings.Cipher
	if cipher == nil {
		cipher = crypt.Default()
	}

	log := audit.NewLog(settings.LogPath)
	if settings.Clock != nil {
		log.WithClock(settings.Clock)
	}

	s := &Store{
		Id:             uuid.New(),
		settings:       settings,
		cipher:         cipher,
		log:            log,
		table:          NewTable(),
		name_index:     index.New(record.FieldName.String()),
		supplier_index: index.New(record.FieldSupplier.String()),
	}
	pkg.DebugLog("opened store", s.Id, "data:", settings.DataPath, "log:", settings.LogPath)
	return s
}

func (s *Store) Settings() Settings { return s.settings }

func (s *Store) Log() *audit.Log { return s.log }

// LogTail returns the last n audit log lines for display.
func (s *Store) LogTail(n int) ([]string, error) {
	lines, err := s.log.Tail(n)
	if err != nil {
		return nil, &IOError{"read", s.log.Path(), err}
	}
	return lines, nil
}

// Index returns the secondary index kept for f, or nil when f is not
// indexed. The index must be treated as read-only.
func (s *Store) Index(f record.Field) *index.Index {
	switch f {
	case record.FieldName:
		return s.name_index
	case record.FieldSupplier:
		return s.supplier_index
	}
	return nil
}

// All returns copies of every record in ascending id order.
func (s *Store) All() []record.Record {
	return copyRows(s.table.Rows())
}

func (s *Store) Get(id int64) mo.Option[record.Record] {
	row, ok := s.table.Get(id)
	if !ok {
		return mo.None[record.Record]()
	}
	return mo.Some(*row)
}

func (s *Store) indexRecord(r *record.Record) {
	s.name_index.Add(r.Name, r.Id)
	s.supplier_index.Add(r.Supplier, r.Id)
}

// unindexRecord drops r.Id from both indexes under whatever key still holds
// it. After an Update without refresh that is the old value, not r's.
func (s *Store) unindexRecord(r *record.Record) {
	s.name_index.RemoveId(r.Id)
	s.supplier_index.RemoveId(r.Id)
}

func (s *Store) rebuildIndexes() {
	s.name_index.Clear()
	s.supplier_index.Clear()
	for _, row := range s.table.Rows() {
		s.indexRecord(row)
	}
}

func (s *Store) appendLog(event audit.Event, details string) error {
	if err := s.log.Append(event, details); err != nil {
		return &IOError{"append to", s.log.Path(), err}
	}
	return nil
}

// commit logs a mutation that already happened and notifies listeners.
// Listeners run even if the log write failed.
func (s *Store) commit(event audit.Event, details string, change Change) error {
	log_err := s.appendLog(event, details)
	notify_err := s.notify(change)
	return errors.Join(log_err, notify_err)
}

func copyRows(rows []*record.Record) []record.Record {
	res := make([]record.Record, 0, len(rows))
	for _, row := range rows {
		res = append(res, *row)
	}
	return res
}

func describe(r *record.Record) string {
	return fmt.Sprintf("id=%d name=%s quantity=%d price=%s supplier=%s",
		r.Id, r.Name, r.Quantity, record.FloatValue(r.Price), r.Supplier)
}
