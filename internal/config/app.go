package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/minesweeper/internal/mines"
)

const EnvPrefix = "MINES"

type Config struct {
	Development bool    `mapstructure:"development"`
	LogLevel    string  `mapstructure:"log_level"`
	Difficulty  string  `mapstructure:"difficulty"`
	Plain       bool    `mapstructure:"plain"`
	Journal     Journal `mapstructure:"journal"`
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"dev":                 "development",
	"log-level":           "log_level",
	"difficulty":          "difficulty",
	"plain":               "plain",
	"journal":             "journal.file",
	"journal-max-size":    "journal.max_size",
	"journal-max-backups": "journal.max_backups",
	"journal-max-age":     "journal.max_age",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("development", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("difficulty", "easy")
	v.SetDefault("plain", false)
	v.SetDefault("journal.file", "")
	v.SetDefault("journal.max_size", 10)
	v.SetDefault("journal.max_backups", 3)
	v.SetDefault("journal.max_age", 28)
}

// Load reads configuration from, in increasing priority: defaults, the
// file named by --config, MINES_* environment variables, and flags set on
// the command line. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Difficulty != "" {
		if _, err := mines.Preset(c.Difficulty); err != nil {
			return err
		}
	}
	if c.Journal.MaxSize < 0 || c.Journal.MaxBackups < 0 || c.Journal.MaxAge < 0 {
		return errors.New("journal rotation limits must not be negative")
	}
	return nil
}

// Level is the slog level for process logs. Development always logs at
// debug.
func (c *Config) Level() slog.Level {
	if c.Development {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
