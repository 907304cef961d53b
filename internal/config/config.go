package config

import (
	"fmt"
	"strings"

	"attrition/internal/errors"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultDataFile  = "greendestination.csv"
	DefaultChartsDir = "charts"
	DefaultAlpha     = 0.05
	DefaultLogLevel  = "INFO"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Charts   ChartConfig
	Analysis AnalysisConfig
	LogLevel string
}

// DataConfig holds input settings
type DataConfig struct {
	File string
}

// ChartConfig holds chart output settings
type ChartConfig struct {
	Dir     string
	Enabled bool
}

// AnalysisConfig holds statistical settings
type AnalysisConfig struct {
	Alpha float64
}

// Flag names, also used as viper keys
const (
	keyFile      = "file"
	keyChartsDir = "charts-dir"
	keyNoCharts  = "no-charts"
	keyAlpha     = "alpha"
	keyLogLevel  = "log-level"
)

var envNames = map[string]string{
	keyFile:      "DATA_FILE",
	keyChartsDir: "CHARTS_DIR",
	keyNoCharts:  "NO_CHARTS",
	keyAlpha:     "ALPHA",
	keyLogLevel:  "LOG_LEVEL",
}

// RegisterFlags defines the optional overrides on fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(keyFile, DefaultDataFile, "employee dataset (.csv or .xlsx)")
	fs.String(keyChartsDir, DefaultChartsDir, "directory charts are written to")
	fs.Bool(keyNoCharts, false, "skip chart rendering")
	fs.Float64(keyAlpha, DefaultAlpha, "significance level for the t-tests")
	fs.String(keyLogLevel, DefaultLogLevel, "ERROR, WARN, INFO, DEBUG or TRACE")
}

// Load merges defaults, environment variables and flags (highest precedence).
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setupDefaults(v)

	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "failed to bind %s", env)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	cfg := &Config{
		Data: DataConfig{
			File: strings.TrimSpace(v.GetString(keyFile)),
		},
		Charts: ChartConfig{
			Dir:     v.GetString(keyChartsDir),
			Enabled: !v.GetBool(keyNoCharts),
		},
		Analysis: AnalysisConfig{
			Alpha: v.GetFloat64(keyAlpha),
		},
		LogLevel: strings.ToUpper(v.GetString(keyLogLevel)),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return cfg, nil
}

func setupDefaults(v *viper.Viper) {
	v.SetDefault(keyFile, DefaultDataFile)
	v.SetDefault(keyChartsDir, DefaultChartsDir)
	v.SetDefault(keyNoCharts, false)
	v.SetDefault(keyAlpha, DefaultAlpha)
	v.SetDefault(keyLogLevel, DefaultLogLevel)
}

func validateConfig(cfg *Config) error {
	if cfg.Data.File == "" {
		return errors.ConfigInvalid("data file is required")
	}
	if cfg.Analysis.Alpha <= 0 || cfg.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid(fmt.Sprintf("alpha must be in (0, 1), got %g", cfg.Analysis.Alpha))
	}
	if cfg.Charts.Enabled && cfg.Charts.Dir == "" {
		return errors.ConfigInvalid("charts directory is required when charts are enabled")
	}
	return nil
}
