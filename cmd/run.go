package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/medsum-cli/internal/charts"
	"github.com/KaramelBytes/medsum-cli/internal/cleaning"
	"github.com/KaramelBytes/medsum-cli/internal/dataset"
	"github.com/KaramelBytes/medsum-cli/internal/report"
	"github.com/KaramelBytes/medsum-cli/internal/utils"
)

var (
	runSaveReport  bool
	runSaveCleaned bool
	runCharts      bool
	runOutDir      string
	runBins        int
)

var runCmd = &cobra.Command{
	Use:   "run [source]",
	Short: "Run the full cleanup and summary pipeline",
	Long: `Load the dataset (from the configured URL, or from the given URL/path),
verify its 9-column schema, median-fill the sentinel zeros, print the summary
report, and optionally save the report, the cleaned CSV, and the charts page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		source := c.DatasetURL
		if len(args) == 1 {
			source = args[0]
		}
		debugf("loading %s", source)
		frame, err := dataset.Load(source, time.Duration(c.HTTPTimeoutSec)*time.Second)
		if err != nil {
			return fmt.Errorf("load data: %w", err)
		}
		warnings, err := dataset.Verify(frame)
		if err != nil {
			return fmt.Errorf("verify schema: %w", err)
		}
		for _, w := range warnings {
			warn("%s", w)
		}
		fills, err := cleaning.MedianFill(frame)
		if err != nil {
			return fmt.Errorf("clean data: %w", err)
		}

		rep, err := report.Build(frame, source, fills)
		if errors.Is(err, dataset.ErrEmpty) {
			warn("nothing to analyze: table is empty")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(rep.Render())

		outDir := runOutDir
		if outDir == "" {
			outDir = c.OutputDir
		}
		if runSaveReport || runSaveCleaned || runCharts {
			if err := utils.EnsureDir(outDir); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if runSaveCleaned {
			var buf bytes.Buffer
			if err := frame.WriteCSV(&buf); err != nil {
				return fmt.Errorf("encode cleaned data: %w", err)
			}
			path := filepath.Join(outDir, c.CleanedFile)
			if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
				return fmt.Errorf("save cleaned data: %w", err)
			}
			fmt.Printf("✓ Cleaned data saved to %s\n", path)
		}
		if runSaveReport {
			path := filepath.Join(outDir, c.ReportFile)
			if err := utils.SafeWriteFile(path, []byte(rep.Render())); err != nil {
				return fmt.Errorf("save report: %w", err)
			}
			fmt.Printf("✓ Summary report saved to %s\n", path)
		}
		if runCharts {
			bins := runBins
			if bins <= 0 {
				bins = c.HistogramBins
			}
			var buf bytes.Buffer
			if err := charts.Render(frame, bins, &buf); err != nil {
				return fmt.Errorf("render charts: %w", err)
			}
			path := filepath.Join(outDir, c.ChartsFile)
			if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
				return fmt.Errorf("save charts: %w", err)
			}
			fmt.Printf("✓ Charts saved to %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runSaveReport, "report", false, "save the summary report to a text file")
	runCmd.Flags().BoolVar(&runSaveCleaned, "save-cleaned", false, "save the cleaned table as CSV")
	runCmd.Flags().BoolVar(&runCharts, "charts", false, "render the charts page to HTML")
	runCmd.Flags().StringVarP(&runOutDir, "out-dir", "o", "", "directory for output files (default from config)")
	runCmd.Flags().IntVar(&runBins, "bins", 0, "histogram bin count (default from config)")
}
