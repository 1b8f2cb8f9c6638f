package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// CanonicalColumns is the expected 9-column schema of the diabetes table.
var CanonicalColumns = []string{
	"Pregnancies", "Glucose", "BloodPressure", "SkinThickness",
	"Insulin", "BMI", "DiabetesPedigreeFunction", "Age", "Outcome",
}

var (
	// ErrEmpty is returned when the input table is absent or has no rows.
	ErrEmpty = errors.New("empty input")
	// ErrSchema is returned when the column count does not match the schema.
	ErrSchema = errors.New("unexpected schema")
)

// Verify checks the column count against the canonical schema and assigns the
// canonical names positionally. If the source carried a header whose names
// disagree with the canonical ones, that is reported as a warning rather than
// an error: assignment stays positional.
func Verify(f *Frame) ([]string, error) {
	if f == nil || f.Empty() {
		return nil, ErrEmpty
	}
	if f.NumCols() != len(CanonicalColumns) {
		return nil, fmt.Errorf("%w: expected %d columns, found %d %v",
			ErrSchema, len(CanonicalColumns), f.NumCols(), f.Names())
	}
	var warnings []string
	for i, name := range f.Names() {
		if name == "" || strings.HasPrefix(name, "column_") {
			continue
		}
		if !strings.EqualFold(name, CanonicalColumns[i]) {
			warnings = append(warnings,
				fmt.Sprintf("column %d named %q in source, renamed to %q", i+1, name, CanonicalColumns[i]))
		}
	}
	if err := f.SetNames(CanonicalColumns); err != nil {
		return nil, err
	}
	return warnings, nil
}
