package store

import "github.com/google/uuid"

type ChangeKind string

const (
	ChangeAdd    ChangeKind = "add"
	ChangeDelete ChangeKind = "delete"
	ChangeClear  ChangeKind = "clear"
	ChangeSupply ChangeKind = "supply"
	ChangeSell   ChangeKind = "sell"
	ChangeUpdate ChangeKind = "update"
	ChangeLoad   ChangeKind = "load"
)

// Change describes a mutation that was applied.
type Change struct {
	Kind ChangeKind
	// Affected record ids; empty for clear and load.
	Ids []int64
	// Id of the store that applied it, filled in by notify.
	Store uuid.UUID
}

type Listener func(c Change) error

type ListenerId int

type listenerEntry struct {
	id ListenerId
	fn Listener
}

// Subscribe registers l after every existing listener.
func (s *Store) Subscribe(l Listener) ListenerId {
	s.next_listener++
	s.listeners = append(s.listeners, listenerEntry{s.next_listener, l})
	return s.next_listener
}

func (s *Store) Unsubscribe(id ListenerId) bool {
	for i, entry := range s.listeners {
		if entry.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) notify(c Change) error {
	c.Store = s.Id
	for _, entry := range s.listeners {
		if err := entry.fn(c); err != nil {
			return err
		}
	}
	return nil
}
