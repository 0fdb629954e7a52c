package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Provider ProviderConfig `mapstructure:"provider"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	AES      AESConfig      `mapstructure:"aes"`
	Health   HealthConfig   `mapstructure:"health"`
	Log      LogConfig      `mapstructure:"log"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

// ProviderConfig is the trading-provider API key pair and target network.
type ProviderConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	KeyName       string `mapstructure:"key_name"`
	PrivateKeyPEM string `mapstructure:"private_key"` // EC private key, PEM
	Network       string `mapstructure:"network"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type HealthConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables, then
// validates it. Environment variables override file values. Prefix: TTB
// (Telegram Trading Bot). Nested keys use underscore: TTB_TELEGRAM_TOKEN,
// TTB_AES_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("telegram.token", "")
	v.SetDefault("provider.base_url", "https://api.cdp.coinbase.com")
	v.SetDefault("provider.key_name", "")
	v.SetDefault("provider.private_key", "")
	v.SetDefault("provider.network", "base-mainnet")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "trading_bot")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("aes.key", "")
	v.SetDefault("health.addr", ":8081")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TTB_TELEGRAM_TOKEN -> telegram.token
	v.SetEnvPrefix("TTB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate fails fast on missing or malformed secrets, before any inbound
// message is accepted.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if c.Provider.KeyName == "" || c.Provider.PrivateKeyPEM == "" {
		return fmt.Errorf("provider.key_name and provider.private_key are required")
	}
	key, err := hex.DecodeString(c.AES.Key)
	if err != nil {
		return fmt.Errorf("aes.key must be hex-encoded: %w", err)
	}
	if len(key) != 32 {
		return fmt.Errorf("aes.key must be 32 bytes (64 hex chars), got %d bytes", len(key))
	}
	return nil
}
