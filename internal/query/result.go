package query

import "github.com/tobsdb/invdb/internal/record"

type ResultKind string

const (
	ResultRecords  ResultKind = "records"
	ResultInserted ResultKind = "inserted"
	ResultDeleted  ResultKind = "deleted"
	ResultUpdated  ResultKind = "updated"
	ResultHelp     ResultKind = "help"
)

func (kind ResultKind) IsReadOnly() bool {
	return kind == ResultRecords || kind == ResultHelp
}

// Result is what one executed line produced. Records is only set for
// SELECT; Count is the number of records returned or affected.
type Result struct {
	Kind    ResultKind
	Records []record.Record
	Count   int
	Message string
}

func NewResult(kind ResultKind, count int, message string) Result {
	return Result{Kind: kind, Count: count, Message: message}
}
