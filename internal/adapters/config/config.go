package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config exposes typed accessors over the merged yaml + environment
// configuration. Environment variables override the file, e.g.
// CLUBHUB_PG_PASSWORD overrides pg.password.
type Config struct {
	PG     PGConfig
	Redis  RedisConfig
	HTTP   HTTPConfig
	Auth   AuthConfig
	Logger LoggerConfig
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("CLUBHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.public_url", "http://localhost:8080")
	v.SetDefault("pg.port", "5432")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("logger.logs_dir", "logs")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// env-only configuration is fine in containers
	}

	return &Config{
		PG:     PGConfig{v},
		Redis:  RedisConfig{v},
		HTTP:   HTTPConfig{v},
		Auth:   AuthConfig{v},
		Logger: LoggerConfig{v},
	}, nil
}

type PGConfig struct{ v *viper.Viper }

func (c PGConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.v.GetString("pg.host"),
		c.v.GetString("pg.port"),
		c.v.GetString("pg.user"),
		c.v.GetString("pg.password"),
		c.v.GetString("pg.database"),
		c.v.GetString("pg.sslmode"),
	)
}

type RedisConfig struct{ v *viper.Viper }

func (c RedisConfig) Host() string     { return c.v.GetString("redis.host") }
func (c RedisConfig) Port() string     { return c.v.GetString("redis.port") }
func (c RedisConfig) Password() string { return c.v.GetString("redis.password") }

type HTTPConfig struct{ v *viper.Viper }

func (c HTTPConfig) Addr() string      { return c.v.GetString("http.addr") }
func (c HTTPConfig) PublicURL() string { return c.v.GetString("http.public_url") }

type AuthConfig struct{ v *viper.Viper }

func (c AuthConfig) Secret() string          { return c.v.GetString("auth.secret") }
func (c AuthConfig) TokenTTL() time.Duration { return c.v.GetDuration("auth.token_ttl") }

type LoggerConfig struct{ v *viper.Viper }

func (c LoggerConfig) Debug() bool     { return c.v.GetBool("logger.debug") }
func (c LoggerConfig) LogToFile() bool { return c.v.GetBool("logger.log_to_file") }
func (c LoggerConfig) LogsDir() string { return c.v.GetString("logger.logs_dir") }
