package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tobsdb/invdb/internal/audit"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/pkg"
)

// Load replaces the in-memory state with the contents of the data file.
// A missing file is not an error and leaves the store untouched. The current
// file is copied to DataPath+AutoBackupSuffix before it is read, and the
// previous state is only discarded once every line parsed.
func (s *Store) Load() error {
	path := s.settings.DataPath
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			pkg.DebugLog("no data file at", path)
			return nil
		}
		return &IOError{"stat", path, err}
	}

	backup_path := path + AutoBackupSuffix
	if err := copyFile(path, backup_path); err != nil {
		return err
	}
	if err := s.appendLog(audit.EventAutoBackup, fmt.Sprintf("path=%s", backup_path)); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &IOError{"read", path, err}
	}

	plain, err := s.cipher.Decrypt(data)
	if err != nil {
		return err
	}

	table, err := parseTable(plain)
	if err != nil {
		return err
	}

	s.table = table
	s.rebuildIndexes()
	pkg.InfoLog("loaded", table.Len(), "records from", path)

	return s.commit(audit.EventLoad, fmt.Sprintf("path=%s records=%d", path, table.Len()), Change{Kind: ChangeLoad})
}

func parseTable(plain []byte) (*Table, error) {
	table := NewTable()
	for i, line := range strings.Split(string(plain), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := record.ParseLine(line)
		if err != nil {
			return nil, &FormatError{i + 1, err}
		}
		// a repeated id keeps the last line
		table.Upsert(&r)
	}
	return table, nil
}

// Save overwrites the data file with every record in id order. The write is
// not atomic.
func (s *Store) Save() error {
	path := s.settings.DataPath
	if path == "" {
		return nil
	}

	var buf bytes.Buffer
	rows := s.table.Rows()
	for _, row := range rows {
		buf.WriteString(row.String())
		buf.WriteByte('\n')
	}

	data, err := s.cipher.Encrypt(buf.Bytes())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IOError{"create", dir, err}
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &IOError{"write", path, err}
	}
	pkg.DebugLog("saved", len(rows), "records to", path)

	return s.appendLog(audit.EventSave, fmt.Sprintf("path=%s records=%d", path, len(rows)))
}

// Backup copies the encrypted data file to path as is.
func (s *Store) Backup(path string) error {
	if s.settings.DataPath == "" {
		return &IOError{"back up", path, errors.New("store has no data file")}
	}
	if err := copyFile(s.settings.DataPath, path); err != nil {
		return err
	}
	return s.appendLog(audit.EventBackup, fmt.Sprintf("path=%s", path))
}

// Restore copies path over the data file and loads it.
func (s *Store) Restore(path string) error {
	if s.settings.DataPath == "" {
		return &IOError{"restore", path, errors.New("store has no data file")}
	}
	if err := copyFile(path, s.settings.DataPath); err != nil {
		return err
	}
	if err := s.appendLog(audit.EventRestore, fmt.Sprintf("path=%s", path)); err != nil {
		return err
	}
	return s.Load()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &IOError{"open", src, err}
	}
	defer in.Close()

	if dir := filepath.Dir(dst); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IOError{"create", dir, err}
		}
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return &IOError{"create", dst, err}
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return &IOError{"copy to", dst, err}
	}
	if err := out.Close(); err != nil {
		return &IOError{"write", dst, err}
	}
	return nil
}
