package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no config home.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "practice_log.json", cfg.StorePath)
	assert.Equal(t, "syllabus", cfg.SyllabusDir)
	assert.Equal(t, ".toml", cfg.SyllabusSuffix)
	assert.False(t, cfg.PracticeLearningItems)
	assert.Zero(t, cfg.SessionLimit)
	assert.Equal(t, "auto", cfg.Prompt)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	yaml := "store_path: progress.db\npractice_learning_items: true\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rehearse.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "progress.db", cfg.StorePath)
	assert.True(t, cfg.PracticeLearningItems)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{ConfigFile: filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rehearse.yaml"), []byte("session_limit: 5\n"), 0o644))
	t.Setenv("REHEARSE_SESSION_LIMIT", "9")
	t.Setenv("REHEARSE_LOG_LEVEL", "error")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.SessionLimit)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REHEARSE_SYLLABUS_DIR=topics\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("REHEARSE_SYLLABUS_DIR") })

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "topics", cfg.SyllabusDir)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	isolate(t)
	t.Setenv("REHEARSE_STORE_PATH", "env.json")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("store", "", "")
	fs.Bool("learning", false, "")
	fs.Int("limit", 0, "")
	require.NoError(t, fs.Parse([]string{"--store", "flag.json", "--learning"}))

	cfg, err := Load(Options{Flags: fs})
	require.NoError(t, err)

	assert.Equal(t, "flag.json", cfg.StorePath)
	assert.True(t, cfg.PracticeLearningItems)
	assert.Zero(t, cfg.SessionLimit)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			StorePath:      "p.json",
			SyllabusDir:    "syllabus",
			SyllabusSuffix: ".toml",
			Prompt:         "auto",
			MaxAttempts:    3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty store", func(c *Config) { c.StorePath = "" }, true},
		{"empty syllabus dir", func(c *Config) { c.SyllabusDir = "" }, true},
		{"suffix without dot", func(c *Config) { c.SyllabusSuffix = "toml" }, true},
		{"negative limit", func(c *Config) { c.SessionLimit = -1 }, true},
		{"zero attempts", func(c *Config) { c.MaxAttempts = 0 }, true},
		{"unknown prompt", func(c *Config) { c.Prompt = "gui" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}
