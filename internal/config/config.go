// Package config loads the CLI configuration from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/devconsole/pkg/adapters/redis"
	"github.com/aretw0/devconsole/pkg/domain"
	"github.com/aretw0/devconsole/pkg/output"
	"github.com/spf13/viper"
)

const (
	configFileName = ".devconsole"
	configFileType = "yaml"

	// EnvPrefix namespaces environment overrides, e.g. DEVCONSOLE_REDIS_ADDR.
	EnvPrefix = "DEVCONSOLE"
)

// Config keys.
const (
	KeyManifest      = "manifest"
	KeyTools         = "tools"
	KeyRedisAddr     = "redis.addr"
	KeyRedisPassword = "redis.password"
	KeyRedisDB       = "redis.db"
	KeyRedisPrefix   = "redis.prefix"
	KeyMetricsAddr   = "metrics.addr"
	KeyPaletteNormal = "palette.normal"
	KeyPaletteError  = "palette.error"
	KeyPalettePrompt = "palette.prompt"
	KeyResetOnStart  = "reset_on_start"
	KeyConfirm       = "confirm"
	KeyDebug         = "debug"
	KeyLogLevel      = "log_level"
)

// Config is the resolved CLI configuration.
type Config struct {
	Manifest     string        `mapstructure:"manifest"`
	Tools        string        `mapstructure:"tools"`
	Redis        RedisConfig   `mapstructure:"redis"`
	Metrics      MetricsConfig `mapstructure:"metrics"`
	Palette      PaletteConfig `mapstructure:"palette"`
	ResetOnStart bool          `mapstructure:"reset_on_start"`
	// Confirm lists commands that ask for confirmation before running.
	Confirm  []string `mapstructure:"confirm"`
	Debug    bool     `mapstructure:"debug"`
	LogLevel string   `mapstructure:"log_level"`
}

// RedisConfig selects the redis value store. An empty Addr keeps values in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// MetricsConfig enables the metrics server when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// PaletteConfig holds hex colors. Empty entries keep the default palette.
type PaletteConfig struct {
	Normal string `mapstructure:"normal"`
	Error  string `mapstructure:"error"`
	Prompt string `mapstructure:"prompt"`
}

// Palette parses the configured colors.
func (p PaletteConfig) Palette() (domain.Palette, error) {
	return output.ParsePalette(p.Normal, p.Error, p.Prompt)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyManifest, "devconsole.yaml")
	v.SetDefault(KeyTools, "")
	v.SetDefault(KeyRedisAddr, "")
	v.SetDefault(KeyRedisPassword, "")
	v.SetDefault(KeyRedisDB, 0)
	v.SetDefault(KeyRedisPrefix, redis.DefaultPrefix)
	v.SetDefault(KeyMetricsAddr, "")
	v.SetDefault(KeyPaletteNormal, "")
	v.SetDefault(KeyPaletteError, "")
	v.SetDefault(KeyPalettePrompt, "")
	v.SetDefault(KeyResetOnStart, true)
	v.SetDefault(KeyConfirm, []string{})
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and decodes the result.
// With an empty path, .devconsole.yaml is searched in the working directory and then
// the home directory, and a missing file is not an error. An explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
