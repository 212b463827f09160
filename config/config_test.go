package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hyperwalk/config"
	"github.com/katalvlaran/hyperwalk/representation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyperwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_EmptyFile(t *testing.T) {
	for _, body := range []string{"", "\n\n"} {
		cfg, err := config.Load(writeFile(t, body))
		require.NoError(t, err, "%q", body)
		assert.Equal(t, config.Default(), cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
input: data/paleo.txt
output_dir: out
workers: 2
largest_component: true
log:
  level: debug
projections:
  - kind: unipartite
    walk: non-lazy
  - kind: bipartite
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/paleo.txt", cfg.Input)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.LargestComponent)
	assert.False(t, cfg.DropDangling)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "unset keys keep defaults")
	assert.Equal(t, []config.Projection{
		{Kind: "unipartite", Walk: "non-lazy"},
		{Kind: "bipartite"},
	}, cfg.Projections)
	assert.Equal(t, "paleo", cfg.Stem())
	require.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "inptu: typo.txt\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestStem(t *testing.T) {
	cfg := config.Default()
	cfg.Input = "/tmp/x/minimal.hg.txt"
	assert.Equal(t, "minimal.hg", cfg.Stem())

	cfg.Name = "run1"
	assert.Equal(t, "run1", cfg.Stem())
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 0
	cfg.Log.Format = "xml"
	cfg.Projections = []config.Projection{{Kind: "tripartite", Walk: "eager"}}

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, representation.ErrUnknownKind)
	assert.ErrorIs(t, err, representation.ErrUnknownWalk)
	assert.Contains(t, err.Error(), "input is required")
	assert.Contains(t, err.Error(), "workers must be at least 1")
}
