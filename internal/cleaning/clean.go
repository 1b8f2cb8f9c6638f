// Package cleaning replaces biologically-impossible zero values with the
// column median. In the source data a literal 0 in the designated columns
// means "unmeasured", not a true zero measurement.
package cleaning

import (
	"errors"
	"fmt"
	"math"

	"github.com/KaramelBytes/medsum-cli/internal/dataset"
	"github.com/KaramelBytes/medsum-cli/internal/stats"
)

// Designated lists the columns where 0 is a missing-value sentinel.
var Designated = []string{"Glucose", "BloodPressure", "SkinThickness", "Insulin", "BMI"}

// ErrColumnMissing is returned when a designated column is absent from the frame.
var ErrColumnMissing = errors.New("designated column not found")

// ColumnFill records what the cleaner did to one column.
type ColumnFill struct {
	Column   string
	Replaced int     // zero sentinels turned into missing
	Filled   int     // missing cells filled, including the replaced ones
	Median   float64 // fill value; NaN if the column had no observed values
}

// MedianFill cleans the designated columns in place: each 0 becomes missing,
// then every missing cell is filled with the median of the column's remaining
// observed values. Columns are independent, so processing order does not
// affect the result, and re-running on already-clean data is a no-op.
func MedianFill(f *dataset.Frame) ([]ColumnFill, error) {
	fills := make([]ColumnFill, 0, len(Designated))
	for _, name := range Designated {
		col, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnMissing, name)
		}
		cf := ColumnFill{Column: name}
		for i, v := range col {
			if v == 0 {
				col[i] = math.NaN()
				cf.Replaced++
			}
		}
		observed := stats.Observed(col)
		if len(observed) == 0 {
			// Nothing to compute a median from; leave the column missing.
			cf.Median = math.NaN()
			fills = append(fills, cf)
			continue
		}
		cf.Median = stats.Median(observed)
		for i, v := range col {
			if math.IsNaN(v) {
				col[i] = cf.Median
				cf.Filled++
			}
		}
		fills = append(fills, cf)
	}
	return fills, nil
}
