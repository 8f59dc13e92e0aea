package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("interpreter", "", "")
	fs.String("env-file", "", "")
	fs.String("notebook", "", "")
	fs.Bool("strict", false, "")
	fs.BoolP("verbose", "v", false, "")
	fs.StringP("output", "o", "", "")
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultInterpreter, cfg.Interpreter)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Empty(t, cfg.EnvFile)
	assert.Empty(t, cfg.Notebook)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	ResetConfig()

	content := []byte("interpreter: /usr/bin/python3.12\nstrict: true\noutput: json\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nblint.yaml"), content, 0o644))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "/usr/bin/python3.12", cfg.Interpreter)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "nblint.yaml", GetConfigFileUsed())
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	ResetConfig()

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env_file: .env.ci\n"), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, ".env.ci", cfg.EnvFile)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	chdir(t, t.TempDir())
	ResetConfig()

	_, err := LoadConfig("does-not-exist.yaml", nil)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	ResetConfig()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "nblint.yaml"), []byte("interpreter: from-file\n"), 0o644))
	t.Setenv("NBLINT_INTERPRETER", "from-env")
	t.Setenv("NBLINT_ENV_FILE", ".env.local")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Interpreter)
	assert.Equal(t, ".env.local", cfg.EnvFile)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	ResetConfig()

	t.Setenv("NBLINT_INTERPRETER", "from-env")
	t.Setenv("NBLINT_OUTPUT", "markdown")

	fs := newFlagSet()
	require.NoError(t, fs.Set("interpreter", "from-flag"))
	require.NoError(t, fs.Set("strict", "true"))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.Interpreter)
	assert.True(t, cfg.Strict)
	// Unset flags must not clobber env values.
	assert.Equal(t, "markdown", cfg.OutputFormat)
}

func TestLoadConfig_KebabFlagMapsToSnakeKey(t *testing.T) {
	chdir(t, t.TempDir())
	ResetConfig()

	fs := newFlagSet()
	require.NoError(t, fs.Set("env-file", ".env.flags"))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)
	assert.Equal(t, ".env.flags", cfg.EnvFile)
}

func TestGetCurrentConfig(t *testing.T) {
	chdir(t, t.TempDir())
	ResetConfig()
	assert.Nil(t, GetCurrentConfig())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Same(t, cfg, GetCurrentConfig())
}
