package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnv(t *testing.T) []string {
	t.Helper()
	return []string{filepath.Join(t.TempDir(), "absent.env")}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(Options{EnvFiles: missingEnv(t)})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Pretty)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, defaultMetricsAddr, cfg.Metrics.Addr)
	assert.True(t, cfg.Media.Verify)
	assert.Equal(t, 1000, cfg.Overlay.BaseZ)
	assert.Equal(t, 100, cfg.Overlay.Increment)
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vitrine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`logging:
  level: debug
  pretty: true
metrics:
  enabled: true
  addr: ":9100"
overlay:
  basez: 50
`), 0o600))

	cfg, err := Load(Options{ConfigFile: path, EnvFiles: missingEnv(t)})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, 50, cfg.Overlay.BaseZ)
	assert.Equal(t, 100, cfg.Overlay.Increment)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vitrine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600))

	t.Setenv("VITRINE_LOGGING_LEVEL", "warn")
	t.Setenv("VITRINE_MEDIA_VERIFY", "false")

	cfg, err := Load(Options{ConfigFile: path, EnvFiles: missingEnv(t)})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Media.Verify)
}

func TestDotEnvFileIsApplied(t *testing.T) {
	chdir(t, t.TempDir())

	envPath := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("VITRINE_OVERLAY_INCREMENT=10\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("VITRINE_OVERLAY_INCREMENT") })

	cfg, err := Load(Options{EnvFiles: []string{envPath}})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Overlay.Increment)
}

func TestExplicitConfigFileMustExist(t *testing.T) {
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml"), EnvFiles: missingEnv(t)})
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	base := Config{
		Logging: LoggingConfig{Level: "info"},
		Metrics: MetricsConfig{Addr: ":9464"},
		Overlay: OverlayConfig{BaseZ: 1000, Increment: 100},
	}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"unknown level":        func(c *Config) { c.Logging.Level = "loud" },
		"metrics without addr": func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Addr = " " },
		"negative base":        func(c *Config) { c.Overlay.BaseZ = -1 },
		"zero increment":       func(c *Config) { c.Overlay.Increment = 0 },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
