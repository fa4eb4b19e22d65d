package market

import "fmt"

// Series is the date-ordered price history of one equity.
type Series struct {
	Symbol string
	Bars   []Bar
}

// Validate checks the series invariants: at least one bar, dates strictly
// increasing, no duplicates.
func (s Series) Validate() error {
	if len(s.Bars) == 0 {
		return &EmptySeriesError{Symbol: s.Symbol}
	}
	for i := 1; i < len(s.Bars); i++ {
		if !s.Bars[i].Date.After(s.Bars[i-1].Date) {
			return fmt.Errorf("series %s: dates not strictly increasing at %s",
				s.Symbol, DateKey(s.Bars[i].Date))
		}
	}
	return nil
}

// Tail returns the last n bars of the series, or the whole series when
// n <= 0 or n exceeds its length.
func (s Series) Tail(n int) Series {
	if n <= 0 || n >= len(s.Bars) {
		return s
	}
	return Series{Symbol: s.Symbol, Bars: s.Bars[len(s.Bars)-n:]}
}

// Closes returns the closing prices in date order.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Set maps equity symbols to their series.
type Set map[string]Series

// NewSet builds a Set from a list of series, rejecting duplicate symbols.
func NewSet(list []Series) (Set, error) {
	set := make(Set, len(list))
	for _, s := range list {
		if _, ok := set[s.Symbol]; ok {
			return nil, fmt.Errorf("duplicate series for symbol %s", s.Symbol)
		}
		set[s.Symbol] = s
	}
	return set, nil
}

// Benchmark returns the series for the given benchmark symbol, failing
// fast when it is absent rather than relying on positional lookup.
func (set Set) Benchmark(symbol string) (Series, error) {
	s, ok := set[symbol]
	if !ok {
		return Series{}, fmt.Errorf("benchmark symbol %s not present in data set", symbol)
	}
	return s, nil
}

// Symbols returns the symbols present in the set, in map order.
func (set Set) Symbols() []string {
	out := make([]string, 0, len(set))
	for sym := range set {
		out = append(out, sym)
	}
	return out
}
