package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/internal/store"
)

const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the operation was refused: unknown id, not enough stock, invalid record
	ExitCommandError = 2 // bad arguments, config, data file or query syntax
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode returns ExitFailure for errors that are not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

func formatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

func printRecords(w io.Writer, records []record.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQUANTITY\tPRICE\tSUPPLIER")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", r.Id, r.Name, r.Quantity, formatPrice(r.Price), r.Supplier)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "(%d record(s))\n", len(records))
	return err
}

// Stats is the monitoring summary printed by the stats command.
type Stats struct {
	TotalRecords      int
	TotalQuantity     int64
	TotalValue        float64
	LowStockThreshold int64
	LowStockCount     int
	TopByValue        []store.SupplierTotal
	TopByQuantity     []store.SupplierTotal
	TopByPrice        []record.Record
	TopByStock        []record.Record
}

func collectStats(s *store.Store, threshold int64, top int) Stats {
	return Stats{
		TotalRecords:      s.TotalRecords(),
		TotalQuantity:     s.TotalQuantity(),
		TotalValue:        s.TotalValue(),
		LowStockThreshold: threshold,
		LowStockCount:     s.LowStockCount(threshold),
		TopByValue:        s.TopSuppliersByValue(top),
		TopByQuantity:     s.TopSuppliersByQuantity(top),
		TopByPrice:        s.TopItemsByPrice(top),
		TopByStock:        s.TopItemsByQuantity(top),
	}
}

func printStats(w io.Writer, stats Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Records:\t%d\n", stats.TotalRecords)
	fmt.Fprintf(tw, "Total quantity:\t%d\n", stats.TotalQuantity)
	fmt.Fprintf(tw, "Total value:\t%s\n", formatPrice(stats.TotalValue))
	fmt.Fprintf(tw, "Low stock (< %d):\t%d\n", stats.LowStockThreshold, stats.LowStockCount)

	fmt.Fprintln(tw, "\nTop suppliers by value:")
	for i, t := range stats.TopByValue {
		fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, t.Supplier, formatPrice(t.Value))
	}
	fmt.Fprintln(tw, "\nTop suppliers by quantity:")
	for i, t := range stats.TopByQuantity {
		fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, t.Supplier, t.Quantity)
	}
	fmt.Fprintln(tw, "\nMost expensive items:")
	for i, r := range stats.TopByPrice {
		fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, r.Name, formatPrice(r.Price))
	}
	fmt.Fprintln(tw, "\nMost stocked items:")
	for i, r := range stats.TopByStock {
		fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, r.Name, r.Quantity)
	}
	return tw.Flush()
}
