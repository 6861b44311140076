package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Parser service specifics
	Parser    ParserConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Telegram  TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ParserConfig struct {
	DefaultLanguage  string
	Timezone         string // IANA name, used to resolve relative dates
	PlaceholderTitle string
	MaxInputLength   int // in runes
}

// CacheConfig sizes the parse result cache. Size 0 disables it.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables rate limiting
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	NgrokAPI   string // local ngrok API, used to discover the webhook URL when WebhookURL is empty
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser
	cfg.Parser.DefaultLanguage = viper.GetString("parser.default_language")
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.PlaceholderTitle = viper.GetString("parser.placeholder_title")
	cfg.Parser.MaxInputLength = viper.GetInt("parser.max_input_length")

	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.default_language", "en")
	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.placeholder_title", "Untitled task")
	viper.SetDefault("parser.max_input_length", 1000)
	viper.SetDefault("cache.size", 1024)
	viper.SetDefault("cache.ttl", "10m")
	viper.SetDefault("rate_limit.requests_per_min", 120)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 {
		return errors.New("http_server.port must be positive")
	}
	if c.Parser.MaxInputLength <= 0 {
		return errors.New("parser.max_input_length must be positive")
	}
	if c.Cache.Size < 0 {
		return errors.New("cache.size must not be negative")
	}
	if _, err := time.LoadLocation(c.Parser.Timezone); err != nil {
		return fmt.Errorf("parser.timezone: %w", err)
	}
	return nil
}
