package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(FlagLogLevel, "", "")
	flags.Bool(FlagNoColor, false, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.LogLevel)
	assert.False(t, cfg.NoColor)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, "cronparse.yaml", "log_level: debug\nno_color: true\n")

	cfg, err := Load(path, newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoad_TOMLConfigFile(t *testing.T) {
	path := writeConfig(t, "cronparse.toml", "log_level = \"warn\"\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "cronparse.yaml", "log_level: debug\n")
	t.Setenv("CRONPARSE_LOG_LEVEL", "error")

	cfg, err := Load(path, newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("CRONPARSE_LOG_LEVEL", "error")
	t.Setenv("CRONPARSE_NO_COLOR", "false")

	cfg, err := Load(writeConfig(t, "cronparse.yaml", ""), newFlags(t, "--log-level", "debug", "--no-color"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoad_DiscoversFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cronparse.yaml"), []byte("no_color: true\n"), 0644))
	chdir(t, dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "cronparse.yaml", "log_level: [unterminated\n")

	_, err := Load(path, nil)
	require.Error(t, err)
}

func TestLoad_UnsetFlagKeepsLevelEmpty(t *testing.T) {
	t.Setenv("CRONPARSE_LOG_LEVEL", "")

	cfg, err := Load(writeConfig(t, "cronparse.yaml", ""), newFlags(t))
	require.NoError(t, err)
	assert.Empty(t, cfg.LogLevel)
}
