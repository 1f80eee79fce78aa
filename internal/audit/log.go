// Package audit keeps the append-only operation log shown to users.
//
// Every entry is one physical line: "[<timestamp>] <EVENT> <details>". The
// file is opened, written and closed for each entry and is never rotated or
// truncated.
package audit

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Event string

const (
	EventAdd        Event = "ADD"
	EventDeleteById Event = "DELETE BY ID"
	EventDeleteAll  Event = "DELETE ALL"
	EventSupply     Event = "SUPPLY"
	EventSell       Event = "SELL"
	EventSearch     Event = "SEARCH"
	EventSort       Event = "SORT"
	EventUpdate     Event = "UPDATE"
	EventLoad       Event = "LOAD"
	EventSave       Event = "SAVE"
	EventBackup     Event = "BACKUP"
	EventRestore    Event = "RESTORE"
	EventAutoBackup Event = "AUTO-BACKUP"
)

const TimestampFormat = "2006-01-02 15:04:05"

const max_line_size = 1024 * 1024

type Log struct {
	path string
	now  func() time.Time
}

// NewLog returns a log writing to path. An empty path disables the log.
func NewLog(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// WithClock replaces the timestamp source.
func (l *Log) WithClock(now func() time.Time) *Log {
	l.now = now
	return l
}

func (l *Log) Path() string { return l.path }

func (l *Log) Enabled() bool { return l.path != "" }

func (l *Log) Format(event Event, details string) string {
	line := fmt.Sprintf("[%s] %s", l.now().Format(TimestampFormat), event)
	if details != "" {
		line += " " + details
	}
	// one event, one physical line
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(line)
}

func (l *Log) Append(event Event, details string) error {
	if !l.Enabled() {
		return nil
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}

	_, write_err := f.WriteString(l.Format(event, details) + "\n")
	close_err := f.Close()
	if write_err != nil {
		return fmt.Errorf("writing log: %w", write_err)
	}
	if close_err != nil {
		return fmt.Errorf("closing log: %w", close_err)
	}
	return nil
}

// Appendf is Append with fmt.Sprintf details.
func (l *Log) Appendf(event Event, format string, args ...any) error {
	return l.Append(event, fmt.Sprintf(format, args...))
}

// Tail returns the last n lines, oldest first. A missing file is an empty log.
func (l *Log) Tail(n int) ([]string, error) {
	if !l.Enabled() || n <= 0 {
		return []string{}, nil
	}

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()

	ring := make([]string, n)
	count := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), max_line_size)
	for scanner.Scan() {
		ring[count%n] = scanner.Text()
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}

	if count <= n {
		return ring[:count], nil
	}
	start := count % n
	return append(ring[start:], ring[:start]...), nil
}
