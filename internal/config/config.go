package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/medsum-cli/internal/dataset"
)

// Global configuration structure.
type Global struct {
	DatasetURL     string `mapstructure:"dataset_url" yaml:"dataset_url"`
	HTTPTimeoutSec int    `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`
	OutputDir      string `mapstructure:"output_dir" yaml:"output_dir"`
	ReportFile     string `mapstructure:"report_file" yaml:"report_file"`
	CleanedFile    string `mapstructure:"cleaned_file" yaml:"cleaned_file"`
	ChartsFile     string `mapstructure:"charts_file" yaml:"charts_file"`
	HistogramBins  int    `mapstructure:"histogram_bins" yaml:"histogram_bins"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.medsum/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".medsum")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("MEDSUM")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset_url", dataset.DefaultSource)
	v.SetDefault("http_timeout_sec", 20)
	v.SetDefault("output_dir", ".")
	v.SetDefault("report_file", "summary_report.txt")
	v.SetDefault("cleaned_file", "cleaned_data.csv")
	v.SetDefault("charts_file", "charts.html")
	v.SetDefault("histogram_bins", 20)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".medsum")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
