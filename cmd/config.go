package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/medsum-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set MedSum configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("dataset_url: %s\n", c.DatasetURL)
		fmt.Printf("http_timeout_sec: %d\n", c.HTTPTimeoutSec)
		fmt.Printf("output_dir: %s\n", c.OutputDir)
		fmt.Printf("report_file: %s\n", c.ReportFile)
		fmt.Printf("cleaned_file: %s\n", c.CleanedFile)
		fmt.Printf("charts_file: %s\n", c.ChartsFile)
		fmt.Printf("histogram_bins: %d\n", c.HistogramBins)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := effectiveConfig()
		switch key {
		case "dataset_url":
			c.DatasetURL = val
		case "http_timeout_sec":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for http_timeout_sec: %v", val)
			}
			c.HTTPTimeoutSec = i
		case "output_dir":
			c.OutputDir = val
		case "report_file":
			c.ReportFile = val
		case "cleaned_file":
			c.CleanedFile = val
		case "charts_file":
			c.ChartsFile = val
		case "histogram_bins":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for histogram_bins: %v", val)
			}
			c.HistogramBins = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
