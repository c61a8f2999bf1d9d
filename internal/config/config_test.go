package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacmetrics-engine/internal/config"
)

const sampleYAML = `
app:
  output_dir: "out"
input:
  file: "vacancies_2024.csv"
  keywords: ["Продавец", "учитель"]
rates:
  url: "https://www.cbr-xml-daily.ru/daily_json.js"
  timeout_seconds: 5
charts:
  top_cities: 7
  top_skills: 12
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleYAML)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vacancies_2024.csv", cfg.Input.File)
	assert.Equal(t, []string{"Продавец", "учитель"}, cfg.Input.Keywords)
	assert.Equal(t, 7, cfg.Charts.TopCities)
	assert.Equal(t, 5*time.Second, cfg.RatesTimeout())
}

func TestRatesTimeoutDefault(t *testing.T) {
	var cfg config.Config
	assert.Equal(t, 20*time.Second, cfg.RatesTimeout())
}

func TestNormalizeAndValidate(t *testing.T) {
	var cfg config.Config
	cfg.Input.File = "x.csv"
	cfg.Input.Keywords = []string{" Продавец ", "продавец", "", "учитель"}

	out, res := config.NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Equal(t, []string{"Продавец", "учитель"}, out.Input.Keywords)
	assert.Equal(t, "charts", out.App.OutputDir)
}

func TestValidateRejectsMissingEssentials(t *testing.T) {
	var cfg config.Config

	_, res := config.NormalizeAndValidate(cfg)
	require.False(t, res.OK())
	assert.Len(t, res.Errors, 2) // no input file, no keywords
}

func TestValidateRejectsBadRatesURL(t *testing.T) {
	var cfg config.Config
	cfg.Input.File = "x.csv"
	cfg.Input.Keywords = []string{"x"}
	cfg.Rates.URL = "://bad"

	_, res := config.NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
}

func TestEnsureUserConfig(t *testing.T) {
	srcDir := t.TempDir()
	dataDir := t.TempDir()
	defaultPath := writeConfig(t, srcDir, sampleYAML)

	userPath, err := config.EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), userPath)

	// edits survive: a second call keeps the existing file
	require.NoError(t, os.WriteFile(userPath, []byte("input:\n  file: other.csv\n"), 0o644))
	again, err := config.EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	cfg, err := config.Load(again)
	require.NoError(t, err)
	assert.Equal(t, "other.csv", cfg.Input.File)
}
