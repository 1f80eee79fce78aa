package store

import "fmt"

// IOError is a filesystem failure on the data, backup or log file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("Failed to %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError is a decrypted data file line that is not a record.
type FormatError struct {
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Invalid record on line %d: %s", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
