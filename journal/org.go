package journal

import (
	"bytes"
	"os"
	"text/template"
	"time"
)

// RunReport bundles everything the org export needs for one run.
type RunReport struct {
	Run      RunRecord
	Results  []ResultRecord
	Failures []string

	OrgPath string
}

var runOrgFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

// Render returns the org-mode summary of the run.
func (v *RunReport) Render() (string, error) {
	t, err := template.New("run").Funcs(runOrgFuncs).Parse(RunOrgTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteOrg renders the report and writes it to OrgPath.
func (v *RunReport) WriteOrg() error {
	out, err := v.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(v.OrgPath, []byte(out), 0644)
}

const RunOrgTemplate = `
* BACKTEST: Relative Strength vs {{.Run.Benchmark}}
:PROPERTIES:
:RUN_ID:      {{if .Run.RunID}}{{.Run.RunID}}{{else}}(run-id?){{end}}
:STRATEGY:    relative_strength
:BENCHMARK:   {{.Run.Benchmark}}
:LARGE_MOVE:  {{printf "%.2f" .Run.LargeMove}}%
:PROFIT_TGT:  {{printf "%.2f" .Run.ProfitTarget}}
:CAPITAL:     {{printf "%.2f" .Run.StartingCapital}}
:HORIZON:     {{.Run.TimeHorizon}}
:SMA_WINDOW:  {{.Run.SMAWindow}}
:SYMBOLS:     {{.Run.Symbols}}
:FAILED:      {{.Run.Failed}}
:CREATED:     [{{(orTime .Run.Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Per-Equity P&L (strategy minus buy-and-hold)
| Symbol | Final Equity | Buy & Hold | P&L | Warnings |
|--------+--------------+------------+-----+----------|
{{- range .Results }}
| {{.Symbol}} | {{printf "%.2f" .FinalEquity}} | {{printf "%.2f" .FinalBuyHold}} | {{printf "%.2f" .ProfitLoss}} | {{.Warnings}} |
{{- end }}

{{- if .Failures }}

** Failed Symbols
{{- range .Failures }}
- {{.}}
{{- end }}
{{- end }}
`
