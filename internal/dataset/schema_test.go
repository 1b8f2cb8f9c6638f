package dataset

import (
	"errors"
	"strings"
	"testing"
)

func numericFrame(t *testing.T, ncol, nrows int) *Frame {
	t.Helper()
	rows := make([][]float64, nrows)
	for i := range rows {
		row := make([]float64, ncol)
		for j := range row {
			row[j] = float64(i + j)
		}
		rows[i] = row
	}
	names := make([]string, ncol)
	for j := range names {
		names[j] = "column_" + string(rune('1'+j))
	}
	f, err := FromRows(names, rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return f
}

func TestVerifyRenamesPositionally(t *testing.T) {
	f := numericFrame(t, 9, 4)
	warnings, err := Verify(f)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if f.Names()[5] != "BMI" || f.Names()[8] != "Outcome" {
		t.Fatalf("names = %v", f.Names())
	}
}

func TestVerifyRejectsWrongColumnCount(t *testing.T) {
	f := numericFrame(t, 8, 4)
	_, err := Verify(f)
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("err = %v, want ErrSchema", err)
	}
	if !strings.Contains(err.Error(), "found 8") {
		t.Fatalf("error does not report found columns: %v", err)
	}
}

func TestVerifyRejectsEmpty(t *testing.T) {
	if _, err := Verify(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("nil frame err = %v, want ErrEmpty", err)
	}
	if _, err := Verify(&Frame{}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty frame err = %v, want ErrEmpty", err)
	}
}

func TestVerifyWarnsOnHeaderMismatch(t *testing.T) {
	rows := [][]float64{{1, 2, 3, 4, 5, 6, 7, 8, 9}}
	names := []string{"Preg", "Glucose", "BloodPressure", "SkinThickness", "Insulin", "BMI", "DiabetesPedigreeFunction", "Age", "Outcome"}
	f, err := FromRows(names, rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	warnings, err := Verify(f)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Preg") {
		t.Fatalf("warnings = %v", warnings)
	}
	if f.Names()[0] != "Pregnancies" {
		t.Fatalf("rename not applied: %v", f.Names())
	}
}
