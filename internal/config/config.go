package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "REHEARSE"

// Config holds application configuration loaded from flags, environment,
// a .env file and an optional rehearse.yaml.
type Config struct {
	Env                   string `mapstructure:"env"`                     // local or production
	StorePath             string `mapstructure:"store_path"`              // progress store; .db/.sqlite selects SQLite
	SyllabusDir           string `mapstructure:"syllabus_dir"`            // directory scanned for syllabus sources
	SyllabusSuffix        string `mapstructure:"syllabus_suffix"`         // only files with this suffix are sources
	PracticeLearningItems bool   `mapstructure:"practice_learning_items"` // also practice items below their goal
	SessionLimit          int    `mapstructure:"session_limit"`           // max items per run, 0 = no limit
	Prompt                string `mapstructure:"prompt"`                  // auto, line or tui
	MaxAttempts           int    `mapstructure:"max_attempts"`            // invalid answers before an item is skipped
	Log                   Log    `mapstructure:"log"`
}

// Log configures the application logger.
type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // empty logs to stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile, if set, must exist and replaces the rehearse.yaml lookup.
	ConfigFile string
	// Flags are bound over file and environment values when changed.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"store":    "store_path",
	"syllabus": "syllabus_dir",
	"suffix":   "syllabus_suffix",
	"learning": "practice_learning_items",
	"limit":    "session_limit",
	"prompt":   "prompt",
}

// Load reads configuration from flags, environment variables, .env and
// config files, in that order of precedence.
func Load(opts Options) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("rehearse")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetDefault("env", "local")
	v.SetDefault("store_path", "practice_log.json")
	v.SetDefault("syllabus_dir", "syllabus")
	v.SetDefault("syllabus_suffix", ".toml")
	v.SetDefault("practice_learning_items", false)
	v.SetDefault("session_limit", 0)
	v.SetDefault("prompt", "auto")
	v.SetDefault("max_attempts", 3)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch {
	case c.StorePath == "":
		return fmt.Errorf("%w: store_path is empty", ErrInvalidConfig)
	case c.SyllabusDir == "":
		return fmt.Errorf("%w: syllabus_dir is empty", ErrInvalidConfig)
	case !strings.HasPrefix(c.SyllabusSuffix, "."):
		return fmt.Errorf("%w: syllabus_suffix %q must start with a dot", ErrInvalidConfig, c.SyllabusSuffix)
	case c.SessionLimit < 0:
		return fmt.Errorf("%w: session_limit must not be negative", ErrInvalidConfig)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be at least 1", ErrInvalidConfig)
	}
	switch c.Prompt {
	case "auto", "line", "tui":
	default:
		return fmt.Errorf("%w: unknown prompt %q", ErrInvalidConfig, c.Prompt)
	}
	return nil
}

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// configDir returns $XDG_CONFIG_HOME/rehearse, falling back to
// ~/.config/rehearse.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "rehearse"), nil
}
