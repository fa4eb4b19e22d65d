package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// LoadCSV reads one equity's daily bars from a Yahoo-Finance-style CSV:
//
//	Date,Open,High,Low,Close,Adj Close,Volume
//
// where Date is 2006-01-02. Extra trailing columns are ignored, a header
// row is allowed, and rows with a "null" price are skipped (Yahoo emits
// them on non-trading days).
func LoadCSV(path, symbol string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	s := Series{Symbol: symbol}
	sawFirst := false

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Series{}, fmt.Errorf("read %s: %w", path, err)
		}
		if len(row) == 0 {
			continue
		}

		// Allow a single header row
		if !sawFirst {
			sawFirst = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "date") {
				continue
			}
		}

		b, ok, err := parseBarRow(row)
		if err != nil {
			return Series{}, fmt.Errorf("parse %s: %w", path, err)
		}
		if !ok {
			continue
		}
		s.Bars = append(s.Bars, b)
	}

	if err := s.Validate(); err != nil {
		return Series{}, err
	}
	return s, nil
}

func parseBarRow(row []string) (Bar, bool, error) {
	// Need at least: date,open,high,low,close
	if len(row) < 5 {
		return Bar{}, false, nil
	}

	for _, v := range row[1:5] {
		if strings.EqualFold(strings.TrimSpace(v), "null") {
			return Bar{}, false, nil
		}
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(row[0]))
	if err != nil {
		return Bar{}, false, fmt.Errorf("bad date %q: %w", row[0], err)
	}

	var px [4]float64
	for i := 0; i < 4; i++ {
		px[i], err = strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
		if err != nil {
			return Bar{}, false, fmt.Errorf("bad price %q: %w", row[i+1], err)
		}
	}

	return Bar{
		Date:  date,
		Open:  px[0],
		High:  px[1],
		Low:   px[2],
		Close: px[3],
	}, true, nil
}

// LoadDir loads every .csv file in dir as one series. The symbol is the
// file name up to the first dot (AMD.csv -> AMD, SPY_1y-1d.csv keeps the
// full stem up to the first separator).
func LoadDir(dir string) (Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var list []Series
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		sym := SymbolFromFile(e.Name())
		s, err := LoadCSV(filepath.Join(dir, e.Name()), sym)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no CSV files in %s", dir)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Symbol < list[j].Symbol })
	return NewSet(list)
}

// SymbolFromFile extracts the equity symbol from a data file name.
func SymbolFromFile(name string) string {
	base := filepath.Base(name)
	for i, r := range base {
		if r == '.' || r == '_' {
			return base[:i]
		}
	}
	return base
}
