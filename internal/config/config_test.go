package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/medsum-cli/internal/dataset"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DatasetURL != dataset.DefaultSource {
		t.Fatalf("dataset_url = %q", c.DatasetURL)
	}
	if c.HTTPTimeoutSec != 20 {
		t.Fatalf("http_timeout_sec = %d", c.HTTPTimeoutSec)
	}
	if c.ReportFile != "summary_report.txt" || c.CleanedFile != "cleaned_data.csv" {
		t.Fatalf("output files = %q, %q", c.ReportFile, c.CleanedFile)
	}
	if c.HistogramBins != 20 {
		t.Fatalf("histogram_bins = %d", c.HistogramBins)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := &Global{
		DatasetURL:     "https://example.com/data.csv",
		HTTPTimeoutSec: 5,
		OutputDir:      "out",
		ReportFile:     "r.txt",
		CleanedFile:    "c.csv",
		ChartsFile:     "ch.html",
		HistogramBins:  10,
	}
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DatasetURL != c.DatasetURL || got.HistogramBins != 10 || got.OutputDir != "out" {
		t.Fatalf("reloaded config = %+v", got)
	}
}

func TestEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MEDSUM_HTTP_TIMEOUT_SEC", "7")
	defer os.Unsetenv("MEDSUM_HTTP_TIMEOUT_SEC")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HTTPTimeoutSec != 7 {
		t.Fatalf("http_timeout_sec = %d, want 7 from env", c.HTTPTimeoutSec)
	}
}
