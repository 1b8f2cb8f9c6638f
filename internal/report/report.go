// Package report computes and renders the summary statistics for a cleaned
// diabetes table: per-column descriptives, the outcome distribution, and mean
// BMI grouped by outcome.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/KaramelBytes/medsum-cli/internal/cleaning"
	"github.com/KaramelBytes/medsum-cli/internal/dataset"
	"github.com/KaramelBytes/medsum-cli/internal/stats"
)

// ColumnStats holds the describe-style summary of one column.
type ColumnStats struct {
	Name   string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// OutcomeCount is the number of rows carrying one outcome label.
type OutcomeCount struct {
	Outcome int
	Count   int
}

// GroupMean is the mean of a column within one outcome group.
type GroupMean struct {
	Outcome int
	Count   int
	Mean    float64
}

// Report is the full summary of a cleaned table.
type Report struct {
	RunID    string
	Source   string
	Rows     int
	Columns  []ColumnStats
	Outcomes []OutcomeCount
	MeanBMI  []GroupMean
	Fills    []cleaning.ColumnFill
}

// Build computes the report for a cleaned frame. Returns dataset.ErrEmpty if
// there is nothing to analyze.
func Build(f *dataset.Frame, source string, fills []cleaning.ColumnFill) (*Report, error) {
	if f == nil || f.Empty() {
		return nil, dataset.ErrEmpty
	}
	rep := &Report{
		RunID:  uuid.NewString(),
		Source: source,
		Rows:   f.NumRows(),
		Fills:  fills,
	}
	for _, name := range f.Names() {
		col, _ := f.Column(name)
		obs := stats.Observed(col)
		cs := ColumnStats{Name: name, Count: len(obs)}
		if len(obs) > 0 {
			cs.Mean = stats.Mean(obs)
			cs.Std = stats.SampleStd(obs)
			cs.Min, cs.Max = stats.MinMax(obs)
			cs.Q25 = stats.Quantile(obs, 0.25)
			cs.Median = stats.Quantile(obs, 0.5)
			cs.Q75 = stats.Quantile(obs, 0.75)
		}
		rep.Columns = append(rep.Columns, cs)
	}
	if outcome, ok := f.Column("Outcome"); ok {
		rep.Outcomes = outcomeCounts(outcome)
		if bmi, ok := f.Column("BMI"); ok {
			rep.MeanBMI = groupMeans(bmi, outcome)
		}
	}
	return rep, nil
}

func outcomeCounts(outcome []float64) []OutcomeCount {
	counts := stats.ValueCounts(outcome)
	labels := make([]int, 0, len(counts))
	for v := range counts {
		labels = append(labels, int(v))
	}
	sort.Ints(labels)
	out := make([]OutcomeCount, 0, len(labels))
	for _, l := range labels {
		out = append(out, OutcomeCount{Outcome: l, Count: counts[float64(l)]})
	}
	return out
}

func groupMeans(values, outcome []float64) []GroupMean {
	sums := map[int]float64{}
	counts := map[int]int{}
	for i, v := range values {
		if math.IsNaN(v) || math.IsNaN(outcome[i]) {
			continue
		}
		label := int(outcome[i])
		sums[label] += v
		counts[label]++
	}
	labels := make([]int, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Ints(labels)
	out := make([]GroupMean, 0, len(labels))
	for _, l := range labels {
		out = append(out, GroupMean{Outcome: l, Count: counts[l], Mean: sums[l] / float64(counts[l])})
	}
	return out
}

// Render produces the textual report printed to the terminal and saved to the
// summary file.
func (r *Report) Render() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("MedSum Report (run %s)\n", r.RunID))
	if r.Source != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", r.Source))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))

	b.WriteString("\nStatistical Summary:\n")
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
	for _, c := range r.Columns {
		tbl.AppendRow(table.Row{
			c.Name, c.Count,
			fmtStat(c.Mean), fmtStat(c.Std), fmtStat(c.Min),
			fmtStat(c.Q25), fmtStat(c.Median), fmtStat(c.Q75), fmtStat(c.Max),
		})
	}
	b.WriteString(tbl.Render())
	b.WriteString("\n")

	if len(r.Outcomes) > 0 {
		b.WriteString("\nDiabetes Outcome Distribution:\n")
		for _, oc := range r.Outcomes {
			b.WriteString(fmt.Sprintf("  %d    %d\n", oc.Outcome, oc.Count))
		}
	}

	if len(r.MeanBMI) > 0 {
		b.WriteString("\nMean BMI by Outcome (0=Non-diabetic, 1=Diabetic):\n")
		for _, gm := range r.MeanBMI {
			b.WriteString(fmt.Sprintf("  %d    %.2f\n", gm.Outcome, gm.Mean))
		}
	}

	if len(r.Fills) > 0 {
		b.WriteString("\nCleaning Log:\n")
		for _, cf := range r.Fills {
			if math.IsNaN(cf.Median) {
				b.WriteString(fmt.Sprintf("  %s: %d zeros marked missing, no observed values to fill from\n",
					cf.Column, cf.Replaced))
				continue
			}
			b.WriteString(fmt.Sprintf("  %s: %d zeros replaced, %d cells filled with median %.2f\n",
				cf.Column, cf.Replaced, cf.Filled, cf.Median))
		}
	}
	return b.String()
}

func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%.4g", v)
}
