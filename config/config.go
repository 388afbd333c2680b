// Package config resolves the effective settings of the CLI and the HTTP
// service from defaults, an optional YAML file, RECURRENCE_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/recurrence/recurrence"
)

var (
	// ErrRead indicates an unreadable or malformed configuration file.
	ErrRead = errors.New("config: cannot read configuration")

	// ErrInvalid indicates settings rejected by validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// EnvPrefix prefixes every environment override, e.g. RECURRENCE_LOG_LEVEL.
const EnvPrefix = "RECURRENCE"

// Config is the full set of settings.
type Config struct {
	Notation string         `mapstructure:"notation" yaml:"notation" validate:"required"`
	Output   string         `mapstructure:"output" yaml:"output" validate:"oneof=text styled json"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Batch    BatchConfig    `mapstructure:"batch" yaml:"batch"`
}

// AnalysisConfig tunes the decision engine.
type AnalysisConfig struct {
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance" validate:"gt=0,lt=1"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// HistoryConfig controls the analysis history store.
type HistoryConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Dir      string `mapstructure:"dir" yaml:"dir" validate:"required_without=InMemory"`
	InMemory bool   `mapstructure:"in_memory" yaml:"in_memory"`
}

// ServerConfig controls the HTTP service.
type ServerConfig struct {
	Addr  string  `mapstructure:"addr" yaml:"addr" validate:"required"`
	Rate  float64 `mapstructure:"rate" yaml:"rate" validate:"gt=0"`
	Burst int     `mapstructure:"burst" yaml:"burst" validate:"gte=1"`
}

// BatchConfig controls concurrent batch solving.
type BatchConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers" validate:"gte=1,lte=64"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// flagKeys maps flag names to configuration keys. Flags absent from the
// set handed to Load are skipped.
var flagKeys = map[string]string{
	"notation":    "notation",
	"output":      "output",
	"tolerance":   "analysis.tolerance",
	"log-level":   "log.level",
	"dev":         "log.development",
	"history":     "history.enabled",
	"history-dir": "history.dir",
	"in-memory":   "history.in_memory",
	"addr":        "server.addr",
	"rate":        "server.rate",
	"burst":       "server.burst",
	"workers":     "batch.workers",
}

// Load resolves the configuration. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("%w: bind flag %s: %v", ErrRead, name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	c, err := Load("", nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks struct constraints and the notation symbol.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := recurrence.ParseNotation(c.Notation); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// NotationSymbol returns the parsed notation. Validate guarantees success.
func (c Config) NotationSymbol() recurrence.Notation {
	n, err := recurrence.ParseNotation(c.Notation)
	if err != nil {
		return recurrence.BigTheta
	}
	return n
}

// YAML renders c in the file format Load accepts.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("notation", "theta")
	v.SetDefault("output", "text")
	v.SetDefault("analysis.tolerance", recurrence.DefaultTolerance)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.dir", defaultHistoryDir())
	v.SetDefault("history.in_memory", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate", 20.0)
	v.SetDefault("server.burst", 40)
	v.SetDefault("batch.workers", 4)
}

func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".recurrence", "history")
	}
	return filepath.Join(home, ".recurrence", "history")
}
