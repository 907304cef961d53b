package config

import (
	"testing"

	"attrition/internal/errors"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.Equal(t, DefaultChartsDir, cfg.Charts.Dir)
	assert.True(t, cfg.Charts.Enabled)
	assert.Equal(t, DefaultAlpha, cfg.Analysis.Alpha)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATA_FILE", "hr.xlsx")
	t.Setenv("ALPHA", "0.01")
	t.Setenv("NO_CHARTS", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "hr.xlsx", cfg.Data.File)
	assert.Equal(t, 0.01, cfg.Analysis.Alpha)
	assert.False(t, cfg.Charts.Enabled)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("DATA_FILE", "from-env.csv")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--file=from-flag.csv", "--charts-dir=out"}))

	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "from-flag.csv", cfg.Data.File)
	assert.Equal(t, "out", cfg.Charts.Dir)
}

func TestLoadRejectsBadAlpha(t *testing.T) {
	t.Setenv("ALPHA", "1.5")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
