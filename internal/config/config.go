// Package config resolves CLI settings from flags, LINEAGE_* environment
// variables, an optional .env file and an optional lineage.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LINEAGE_REDIS_ADDR.
const EnvPrefix = "LINEAGE"

// Config holds the resolved settings.
type Config struct {
	Source        string      `mapstructure:"source"`
	Format        string      `mapstructure:"format"`
	LogLevel      string      `mapstructure:"log_level"`
	ImplicitRoots bool        `mapstructure:"implicit_roots"`
	Redis         RedisConfig `mapstructure:"redis"`
	HTTP          HTTPConfig  `mapstructure:"http"`
}

// RedisConfig locates the snapshot store.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// HTTPConfig configures `lineage serve`.
type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{
	"source":         "source",
	"format":         "format",
	"log_level":      "log-level",
	"implicit_roots": "implicit-roots",
	"redis.addr":     "redis-addr",
	"redis.password": "redis-password",
	"redis.db":       "redis-db",
	"redis.ttl":      "redis-ttl",
	"http.port":      "port",
}

// Load resolves the configuration. Precedence, highest first: flags that were
// set explicitly, environment, config file, flag defaults, built-in defaults.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("source", ".")
	v.SetDefault("format", "text")
	v.SetDefault("log_level", "info")
	v.SetDefault("implicit_roots", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Duration(0))
	v.SetDefault("http.port", "8080")

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv(EnvPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("lineage")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
