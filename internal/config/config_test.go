package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty directory so the
// developer's own config never leaks into a test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
}

func newFlaggedCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("name", "n", "", "")
	cmd.Flags().Bool("case-sensitive", false, "")
	cmd.Flags().Bool("hidden", false, "")
	cmd.Flags().Bool("skip-binary", false, "")
	cmd.Flags().String("opener", "", "")
	cmd.Flags().Bool("debug", false, "")
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(newFlaggedCommand(), "")
	require.NoError(t, err)

	assert.Equal(t, "*", cfg.Name)
	assert.False(t, cfg.CaseSensitive)
	assert.False(t, cfg.Hidden)
	assert.False(t, cfg.SkipBinary)
	assert.Empty(t, cfg.Opener)
	assert.False(t, cfg.Debug)
}

func TestLoadFromExplicitFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "name: \"*.go\"\ncase_sensitive: true\nhidden: true\nopener: gio open\n")

	cfg, err := Load(newFlaggedCommand(), path)
	require.NoError(t, err)

	assert.Equal(t, "*.go", cfg.Name)
	assert.True(t, cfg.CaseSensitive)
	assert.True(t, cfg.Hidden)
	assert.Equal(t, "gio open", cfg.Opener)
}

func TestLoadFromDefaultLocation(t *testing.T) {
	isolate(t)
	path := DefaultConfigPath()
	require.NotEmpty(t, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("skip_binary: true\n"), 0o644))

	cfg, err := Load(newFlaggedCommand(), "")
	require.NoError(t, err)
	assert.True(t, cfg.SkipBinary)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(newFlaggedCommand(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadMalformedFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "name: [unterminated\n")

	_, err := Load(newFlaggedCommand(), path)
	require.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "name: \"*.go\"\nhidden: false\n")
	t.Setenv("FINDFILES_NAME", "*.md")
	t.Setenv("FINDFILES_HIDDEN", "true")

	cfg, err := Load(newFlaggedCommand(), path)
	require.NoError(t, err)

	assert.Equal(t, "*.md", cfg.Name)
	assert.True(t, cfg.Hidden)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("FINDFILES_NAME", "*.md")
	t.Setenv("FINDFILES_CASE_SENSITIVE", "false")

	cmd := newFlaggedCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--name", "*.txt", "--case-sensitive"}))

	cfg, err := Load(cmd, "")
	require.NoError(t, err)

	assert.Equal(t, "*.txt", cfg.Name)
	assert.True(t, cfg.CaseSensitive)
}

func TestUnchangedFlagsKeepConfiguredValues(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "name: \"*.log\"\n")

	cmd := newFlaggedCommand()
	require.NoError(t, cmd.Flags().Parse(nil))

	cfg, err := Load(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, "*.log", cfg.Name)
}

func TestLoadWithoutCommand(t *testing.T) {
	isolate(t)
	t.Setenv("FINDFILES_DEBUG", "1")

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}
