package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Frame is a column-major table of float64 values. NaN marks a missing cell.
// Column returns the backing slice, so callers that clean the data mutate the
// frame in place.
type Frame struct {
	names []string
	cols  [][]float64
}

// NewFrame builds a frame from column-major data. All columns must have the
// same length and there must be one name per column.
func NewFrame(names []string, cols [][]float64) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("frame: %d names for %d columns", len(names), len(cols))
	}
	for i := 1; i < len(cols); i++ {
		if len(cols[i]) != len(cols[0]) {
			return nil, fmt.Errorf("frame: column %q has %d rows, want %d", names[i], len(cols[i]), len(cols[0]))
		}
	}
	return &Frame{names: names, cols: cols}, nil
}

// FromRows builds a frame from row-major data. Short rows are padded with NaN.
func FromRows(names []string, rows [][]float64) (*Frame, error) {
	cols := make([][]float64, len(names))
	for j := range cols {
		cols[j] = make([]float64, len(rows))
	}
	for i, row := range rows {
		if len(row) > len(names) {
			return nil, fmt.Errorf("frame: row %d has %d fields, want at most %d", i+1, len(row), len(names))
		}
		for j := range names {
			if j < len(row) {
				cols[j][i] = row[j]
			} else {
				cols[j][i] = math.NaN()
			}
		}
	}
	return &Frame{names: names, cols: cols}, nil
}

// Names returns the column names in order.
func (f *Frame) Names() []string { return f.names }

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return len(f.cols[0])
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// Empty reports whether the frame has no rows or no columns.
func (f *Frame) Empty() bool { return f.NumCols() == 0 || f.NumRows() == 0 }

// Column returns the backing slice for the named column.
func (f *Frame) Column(name string) ([]float64, bool) {
	for i, n := range f.names {
		if n == name {
			return f.cols[i], true
		}
	}
	return nil, false
}

// SetNames replaces all column names positionally.
func (f *Frame) SetNames(names []string) error {
	if len(names) != len(f.cols) {
		return fmt.Errorf("frame: %d names for %d columns", len(names), len(f.cols))
	}
	f.names = append([]string(nil), names...)
	return nil
}

// WriteCSV writes the frame with a header row. Missing cells become empty fields.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.names); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, f.NumCols())
	for i := 0; i < f.NumRows(); i++ {
		for j := range f.cols {
			record[j] = formatCell(f.cols[j][i])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
