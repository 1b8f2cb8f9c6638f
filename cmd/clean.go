package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/medsum-cli/internal/cleaning"
	"github.com/KaramelBytes/medsum-cli/internal/dataset"
	"github.com/KaramelBytes/medsum-cli/internal/utils"
)

var cleanOutput string

var cleanCmd = &cobra.Command{
	Use:   "clean [source]",
	Short: "Clean the dataset and write the cleaned CSV",
	Long: `Load the dataset, verify its schema, median-fill the sentinel zeros in the
designated columns, and write the cleaned table as CSV without running the
full analysis.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		source := c.DatasetURL
		if len(args) == 1 {
			source = args[0]
		}
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
		for _, cf := range fills {
			debugf("%s: %d zeros replaced, %d cells filled", cf.Column, cf.Replaced, cf.Filled)
		}

		out := cleanOutput
		if out == "" {
			out = c.CleanedFile
		}
		var buf bytes.Buffer
		if err := frame.WriteCSV(&buf); err != nil {
			return fmt.Errorf("encode cleaned data: %w", err)
		}
		if err := utils.SafeWriteFile(out, buf.Bytes()); err != nil {
			return fmt.Errorf("save cleaned data: %w", err)
		}
		fmt.Printf("✓ Cleaned data saved to %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "path for the cleaned CSV (default from config)")
}
