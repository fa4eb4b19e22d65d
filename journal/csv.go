// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	results *csv.Writer
	curves  *csv.Writer
	rf, cf  *os.File
}

func NewCSV(resultsPath, curvesPath string) (*CSVJournal, error) {
	rf, err := os.Create(resultsPath)
	if err != nil {
		return nil, err
	}
	cf, err := os.Create(curvesPath)
	if err != nil {
		return nil, err
	}

	rw := csv.NewWriter(rf)
	cw := csv.NewWriter(cf)

	if err := rw.Write([]string{"run_id", "symbol", "final_equity", "final_buy_hold", "profit_loss", "warnings"}); err != nil {
		return nil, err
	}
	if err := cw.Write([]string{"run_id", "symbol", "date", "action", "quantity", "position_value", "cash", "total_equity", "buy_and_hold"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, cw, rf, cf}, nil
}

// RecordRun is a no-op for CSV output; run parameters live in the
// caller's config file.
func (j *CSVJournal) RecordRun(RunRecord) error { return nil }

func (j *CSVJournal) RecordResult(r ResultRecord) error {
	err := j.results.Write([]string{
		r.RunID,
		r.Symbol,
		f(r.FinalEquity),
		f(r.FinalBuyHold),
		f(r.ProfitLoss),
		strconv.Itoa(r.Warnings),
	})
	if err != nil {
		return err
	}
	j.results.Flush()
	return j.results.Error()
}

func (j *CSVJournal) RecordCurve(c CurveRow) error {
	err := j.curves.Write([]string{
		c.RunID,
		c.Symbol,
		c.Date.Format(time.DateOnly),
		c.Action,
		strconv.FormatInt(c.Quantity, 10),
		f(c.PositionValue),
		f(c.Cash),
		f(c.TotalEquity),
		f(c.BuyAndHold),
	})
	if err != nil {
		return err
	}
	j.curves.Flush()
	return j.curves.Error()
}

func (j *CSVJournal) Close() error {
	j.results.Flush()
	if err := j.results.Error(); err != nil {
		return err
	}
	j.curves.Flush()
	if err := j.curves.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	if err := j.cf.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
