package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tailship"
	"github.com/yacobolo/tailship/internal/doctor"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailship.yaml")
	configContent := `
dir: my-theme
quiet: true

install:
  version: v4
  skip-install: true

doctor:
  paths:
    - "custom/**/*.liquid"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "my-theme", k.String("dir"))
	assert.True(t, k.Bool("quiet"))
	assert.Equal(t, "v4", k.String("install.version"))
	assert.True(t, k.Bool("install.skip-install"))
	assert.Equal(t, []string{"custom/**/*.liquid"}, k.Strings("doctor.paths"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.tailship.yaml"))

	cfg := buildInstallConfig()
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, tailship.Version(""), cfg.CSSVersion, "empty version triggers the prompt")
	assert.False(t, cfg.SkipInstall)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailship.yaml")
	configContent := `
dir: from-file
install:
  version: v3
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("TAILSHIP_DIR", "from-env")
	t.Setenv("TAILSHIP_INSTALL_VERSION", "v4")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("dir"))
	assert.Equal(t, "v4", k.String("install.version"))
}

func TestBuildInstallConfig_FromFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailship.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("install:\n  version: v3\n"), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	cfg := buildInstallConfig()
	assert.Equal(t, tailship.VersionV3, cfg.CSSVersion)
}

func TestBuildDoctorConfig_Defaults(t *testing.T) {
	resetKoanf()

	cfg := buildDoctorConfig()
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, doctor.DefaultScanPaths, cfg.ScanPaths)
	assert.False(t, cfg.UseColors)
}
