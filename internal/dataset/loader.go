package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSource is the published PIMA Indians Diabetes table.
const DefaultSource = "https://raw.githubusercontent.com/jbrownlee/Datasets/master/pima-indians-diabetes.csv"

// Load fetches a CSV table from a URL or local path into a Frame. The first
// failure is terminal: there are no retries.
func Load(source string, timeout time.Duration) (*Frame, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return loadURL(source, timeout)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func loadURL(url string, timeout time.Duration) (*Frame, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("fetch dataset: unexpected status %s: %s", resp.Status, string(b))
	}
	return Parse(resp.Body)
}

// Parse reads comma-separated rows into a Frame. A leading record whose
// non-empty fields are not all numeric is treated as a header; otherwise
// columns get generic positional names. Empty cells become NaN.
func Parse(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Frame{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	ncol := len(first)

	names := make([]string, ncol)
	var rows [][]float64
	if row, ok := parseRecord(first); ok {
		for j := range names {
			names[j] = fmt.Sprintf("column_%d", j+1)
		}
		rows = append(rows, row)
	} else {
		for j, h := range first {
			names[j] = strings.TrimSpace(h)
		}
	}

	for line := len(rows) + 1; ; line++ {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		if len(rec) > ncol {
			return nil, fmt.Errorf("parse row %d: %d fields, want %d", line, len(rec), ncol)
		}
		row, ok := parseRecord(rec)
		if !ok {
			return nil, fmt.Errorf("parse row %d: non-numeric value in %v", line, rec)
		}
		// Pad short rows with NaN.
		for len(row) < ncol {
			row = append(row, math.NaN())
		}
		rows = append(rows, row)
	}
	return FromRows(names, rows)
}

// parseRecord converts a CSV record to floats. Empty fields map to NaN.
// Returns false if any non-empty field fails to parse.
func parseRecord(rec []string) ([]float64, bool) {
	row := make([]float64, len(rec))
	for j, s := range rec {
		s = strings.TrimSpace(s)
		if s == "" {
			row[j] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		row[j] = v
	}
	return row, true
}
