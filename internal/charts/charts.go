// Package charts renders the summary visualizations to a single HTML page:
// the outcome bar chart plus BMI and Glucose histograms split by outcome.
package charts

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/KaramelBytes/medsum-cli/internal/dataset"
	"github.com/KaramelBytes/medsum-cli/internal/stats"
)

const (
	colorNonDiabetic = "#87CEEB" // skyblue
	colorDiabetic    = "#FA8072" // salmon

	chartWidth  = "900px"
	chartHeight = "500px"
)

// DefaultBins is the histogram bin count used when none is configured.
const DefaultBins = 20

// Render writes the chart page for a cleaned frame.
func Render(f *dataset.Frame, bins int, w io.Writer) error {
	outcome, ok := f.Column("Outcome")
	if !ok {
		return fmt.Errorf("chart data: column %q not found", "Outcome")
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	page := components.NewPage()
	page.PageTitle = "MedSum Charts"
	page.AddCharts(outcomeBar(outcome))

	for _, name := range []string{"BMI", "Glucose"} {
		col, ok := f.Column(name)
		if !ok {
			return fmt.Errorf("chart data: column %q not found", name)
		}
		page.AddCharts(histogramByOutcome(name, col, outcome, bins))
	}
	return page.Render(w)
}

func outcomeBar(outcome []float64) *charts.Bar {
	counts := stats.ValueCounts(outcome)
	labels := make([]int, 0, len(counts))
	for v := range counts {
		labels = append(labels, int(v))
	}
	sort.Ints(labels)

	xLabels := make([]string, len(labels))
	data := make([]opts.BarData, len(labels))
	for i, l := range labels {
		xLabels[i] = fmt.Sprintf("%d", l)
		color := colorNonDiabetic
		if l == 1 {
			color = colorDiabetic
		}
		data[i] = opts.BarData{Value: counts[float64(l)], ItemStyle: &opts.ItemStyle{Color: color}}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Distribution of Diabetes Outcomes"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Outcome (0 = No Diabetes, 1 = Diabetes)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Patients"}),
	)
	bar.SetXAxis(xLabels)
	bar.AddSeries("Patients", data)
	return bar
}

func histogramByOutcome(name string, values, outcome []float64, bins int) *charts.Bar {
	labels, counts0, counts1 := binByOutcome(values, outcome, bins)

	data0 := make([]opts.BarData, len(counts0))
	data1 := make([]opts.BarData, len(counts1))
	for i := range labels {
		data0[i] = opts.BarData{Value: counts0[i]}
		data1[i] = opts.BarData{Value: counts1[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Distribution by Diabetes Outcome", name)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: name}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("Outcome 0", data0,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorNonDiabetic}),
		charts.WithBarChartOpts(opts.BarChart{BarGap: "0%"}),
	)
	bar.AddSeries("Outcome 1", data1,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorDiabetic}),
		charts.WithBarChartOpts(opts.BarChart{BarGap: "0%"}),
	)
	return bar
}

// binByOutcome buckets values into equal-width bins shared by both outcome
// groups so the two series line up on the same axis.
func binByOutcome(values, outcome []float64, bins int) (labels []string, counts0, counts1 []int) {
	obs := stats.Observed(values)
	labels = make([]string, bins)
	counts0 = make([]int, bins)
	counts1 = make([]int, bins)
	if len(obs) == 0 {
		return labels, counts0, counts1
	}
	lo, hi := stats.MinMax(obs)
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1
	}
	for i := range labels {
		labels[i] = fmt.Sprintf("%.1f", lo+width*float64(i))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsNaN(outcome[i]) {
			continue
		}
		b := int((v - lo) / width)
		if b >= bins {
			b = bins - 1 // the maximum value lands in the last bin
		}
		if b < 0 {
			b = 0
		}
		if outcome[i] == 1 {
			counts1[b]++
		} else {
			counts0[b]++
		}
	}
	return labels, counts0, counts1
}
