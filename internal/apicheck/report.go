package apicheck

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const maxDetailWidth = 60

// Result is the outcome of one check
type Result struct {
	Name     string
	Endpoint string
	Status   int
	Passed   bool
	Detail   string
	Elapsed  time.Duration
}

// Report collects the results of a run
type Report struct {
	BaseURL string
	Results []Result
}

// Passed counts passing checks
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Failed returns the failing checks in run order
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// SuccessRate is the passing percentage, zero for an empty run
func (r *Report) SuccessRate() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Passed()) / float64(len(r.Results)) * 100
}

// OK reports whether every check passed
func (r *Report) OK() bool {
	return len(r.Results) > 0 && r.Passed() == len(r.Results)
}

// Render writes the result table and summary to w
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "API checks for %s:\n", r.BaseURL)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Check", "Endpoint", "Status", "Time", "Result"})

	for i, res := range r.Results {
		outcome := "PASS"
		if !res.Passed {
			outcome = "FAIL"
		}
		status := "-"
		if res.Status != 0 {
			status = fmt.Sprintf("%d", res.Status)
		}
		t.AppendRow(table.Row{
			i + 1,
			res.Name,
			"/" + res.Endpoint,
			status,
			res.Elapsed.Round(time.Millisecond).String(),
			outcome,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignCenter},
	})
	t.AppendFooter(table.Row{"", "", "", "", "Passed", fmt.Sprintf("%d/%d", r.Passed(), len(r.Results))})
	t.Render()

	if failed := r.Failed(); len(failed) > 0 {
		fmt.Fprintf(w, "\nFailed checks (%d):\n", len(failed))
		for _, res := range failed {
			fmt.Fprintf(w, "  - %s: %s\n", res.Name, text.Trim(res.Detail, maxDetailWidth))
		}
	}

	fmt.Fprintf(w, "\nSuccess rate: %.1f%%\n", r.SuccessRate())
}
