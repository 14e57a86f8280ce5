// Package config holds the engine's tunable, environment-overridable
// settings: default board variant, cache toggle, and thread count.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/copperhead-games/gomoku-engine/board"
)

const (
	keyVariant      = "variant"
	keyCacheEnabled = "cache_enabled"
	keyThreads      = "threads"
)

// Config is the engine's merged configuration: defaults, overridden by
// a config file if present, overridden again by GOMOKU_-prefixed
// environment variables.
type Config struct {
	v *viper.Viper
}

// Load builds a Config from defaults, an optional config file, and the
// environment. A missing config file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyVariant, string(board.VarStandard))
	v.SetDefault(keyCacheEnabled, true)
	v.SetDefault(keyThreads, 0) // 0 means search.DefaultThreads()

	v.SetEnvPrefix("GOMOKU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
			log.Info().Str("file", configFile).Msg("config: no config file found, using defaults")
		}
	}

	return &Config{v: v}, nil
}

// Variant returns the configured default board variant.
func (c *Config) Variant() board.Variant {
	return board.Variant(c.v.GetString(keyVariant))
}

// CacheEnabled reports whether the position-hash cache should be used.
func (c *Config) CacheEnabled() bool {
	return c.v.GetBool(keyCacheEnabled)
}

// Threads returns the configured worker count, or 0 if the caller
// should fall back to search.DefaultThreads().
func (c *Config) Threads() int {
	return c.v.GetInt(keyThreads)
}
