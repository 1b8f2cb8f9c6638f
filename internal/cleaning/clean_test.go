package cleaning

import (
	"errors"
	"math"
	"testing"

	"github.com/KaramelBytes/medsum-cli/internal/dataset"
)

// cleanedFrame builds a 9-column frame with the canonical schema where every
// designated column holds the given values and the rest are constant.
func cleanedFrame(t *testing.T, designated []float64) *dataset.Frame {
	t.Helper()
	rows := make([][]float64, len(designated))
	for i := range rows {
		row := make([]float64, len(dataset.CanonicalColumns))
		for j := range row {
			row[j] = 1
		}
		for j, name := range dataset.CanonicalColumns {
			for _, d := range Designated {
				if name == d {
					row[j] = designated[i]
				}
			}
		}
		rows[i] = row
	}
	f, err := dataset.FromRows(append([]string(nil), dataset.CanonicalColumns...), rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return f
}

func TestMedianFillReplacesSentinels(t *testing.T) {
	f := cleanedFrame(t, []float64{0, 0, 70, 80, 90})
	fills, err := MedianFill(f)
	if err != nil {
		t.Fatalf("MedianFill: %v", err)
	}
	if len(fills) != len(Designated) {
		t.Fatalf("fills = %d, want %d", len(fills), len(Designated))
	}
	for _, cf := range fills {
		if cf.Replaced != 2 || cf.Filled != 2 {
			t.Fatalf("%s: replaced %d filled %d, want 2/2", cf.Column, cf.Replaced, cf.Filled)
		}
		// Median of the remaining [70 80 90].
		if cf.Median != 80 {
			t.Fatalf("%s: median = %f, want 80", cf.Column, cf.Median)
		}
	}
	glucose, _ := f.Column("Glucose")
	want := []float64{80, 80, 70, 80, 90}
	for i, v := range want {
		if glucose[i] != v {
			t.Fatalf("glucose = %v, want %v", glucose, want)
		}
	}
}

func TestMedianFillLeavesNoZeros(t *testing.T) {
	f := cleanedFrame(t, []float64{0, 12, 0, 44, 90, 0, 7})
	if _, err := MedianFill(f); err != nil {
		t.Fatalf("MedianFill: %v", err)
	}
	for _, name := range Designated {
		col, _ := f.Column(name)
		for i, v := range col {
			if v == 0 || math.IsNaN(v) {
				t.Fatalf("%s[%d] = %f after cleaning", name, i, v)
			}
		}
	}
}

func TestMedianFillIdempotent(t *testing.T) {
	f := cleanedFrame(t, []float64{0, 0, 70, 80, 90})
	if _, err := MedianFill(f); err != nil {
		t.Fatalf("first MedianFill: %v", err)
	}
	first := map[string][]float64{}
	for _, name := range Designated {
		col, _ := f.Column(name)
		first[name] = append([]float64(nil), col...)
	}
	fills, err := MedianFill(f)
	if err != nil {
		t.Fatalf("second MedianFill: %v", err)
	}
	for _, cf := range fills {
		if cf.Replaced != 0 || cf.Filled != 0 {
			t.Fatalf("%s: second pass replaced %d filled %d, want 0/0", cf.Column, cf.Replaced, cf.Filled)
		}
	}
	for _, name := range Designated {
		col, _ := f.Column(name)
		for i := range col {
			if col[i] != first[name][i] {
				t.Fatalf("%s changed on second pass", name)
			}
		}
	}
}

func TestMedianFillFillsTrueMissing(t *testing.T) {
	f := cleanedFrame(t, []float64{math.NaN(), 70, 80, 90})
	fills, err := MedianFill(f)
	if err != nil {
		t.Fatalf("MedianFill: %v", err)
	}
	if fills[0].Replaced != 0 || fills[0].Filled != 1 {
		t.Fatalf("fill = %+v", fills[0])
	}
	col, _ := f.Column(Designated[0])
	if col[0] != 80 {
		t.Fatalf("missing cell filled with %f, want 80", col[0])
	}
}

func TestMedianFillMissingColumn(t *testing.T) {
	names := []string{"a", "b", "c"}
	f, err := dataset.FromRows(names, [][]float64{{1, 2, 3}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if _, err := MedianFill(f); !errors.Is(err, ErrColumnMissing) {
		t.Fatalf("err = %v, want ErrColumnMissing", err)
	}
}

func TestMedianFillAllSentinels(t *testing.T) {
	f := cleanedFrame(t, []float64{0, 0, 0})
	fills, err := MedianFill(f)
	if err != nil {
		t.Fatalf("MedianFill: %v", err)
	}
	if !math.IsNaN(fills[0].Median) || fills[0].Filled != 0 {
		t.Fatalf("fill = %+v, want NaN median and nothing filled", fills[0])
	}
}
