package market

import (
	"fmt"
	"time"
)

// EmptySeriesError reports an equity series with no rows. There is
// nothing to simulate, so the run for that symbol aborts.
type EmptySeriesError struct {
	Symbol string
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("series %s is empty", e.Symbol)
}

// AlignmentError reports a date present in an equity series but missing
// from the benchmark series. Signal generation needs the benchmark change
// for every equity date, so this aborts the run for that symbol.
type AlignmentError struct {
	Symbol string
	Date   time.Time
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("series %s: no benchmark row for %s", e.Symbol, DateKey(e.Date))
}

// WarningKind classifies non-fatal conditions surfaced by a run.
type WarningKind string

const (
	// WarnUndefinedChange marks a day whose change could not be computed
	// because the previous close was zero.
	WarnUndefinedChange WarningKind = "UndefinedChange"

	// WarnInsufficientCapital marks a BUY day where cash bought zero
	// whole shares. The position still flips to IN with quantity 0 and,
	// since its value can never clear the profit target, the symbol is
	// effectively frozen out of further trades. This matches the
	// reference simulation; the warning makes it observable.
	WarnInsufficientCapital WarningKind = "InsufficientCapital"
)

// Warning is a non-fatal condition tied to one day of one run. Warnings
// never interrupt a simulation; they ride alongside its results.
type Warning struct {
	Kind WarningKind
	Date time.Time
}

func (w Warning) String() string {
	return fmt.Sprintf("%s on %s", w.Kind, DateKey(w.Date))
}
