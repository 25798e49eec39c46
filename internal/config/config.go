package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// EnvConfigPath selects a YAML config file; without it only the environment is read.
const EnvConfigPath = "CONFIG_PATH"

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Server    ServerOpts      `yaml:"server_opts"`
	Utility   UtilityConfig   `yaml:"utility"`
	Provider  ProviderConfig  `yaml:"provider"`
	Earnings  EarningsConfig  `yaml:"earnings"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

type HTTPConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"HTTP_LISTEN_ADDR" env-default:":8080"`
}

type ServerOpts struct {
	ReadTimeoutSeconds  int `yaml:"read_timeout"  env:"HTTP_READ_TIMEOUT"  env-default:"10"`
	WriteTimeoutSeconds int `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15"`
	IdleTimeoutSeconds  int `yaml:"idle_timeout"  env:"HTTP_IDLE_TIMEOUT"  env-default:"60"`
}

// UtilityConfig is the side listener for /health, /ready and /metrics.
type UtilityConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"UTILITY_LISTEN_ADDR" env-default:":9090"`
}

type ProviderConfig struct {
	URL     string        `yaml:"url"     env:"YOUTUBE_API_URL"     env-default:"https://www.googleapis.com/youtube/v3/videos"`
	APIKey  string        `yaml:"api_key" env:"YOUTUBE_API_KEY"     env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"YOUTUBE_API_TIMEOUT" env-default:"10s"`
}

type EarningsConfig struct {
	Rate float64 `yaml:"rate" env:"EARNINGS_RATE" env-default:"60"`   // $60
	Per  int64   `yaml:"per"  env:"EARNINGS_PER"  env-default:"1000"` // per 1000 views
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"   env-default:"120"`
	Burst             int `yaml:"burst"               env:"RATE_LIMIT_BURST" env-default:"10"`
}

type LogConfig struct {
	Level       string `yaml:"level"       env:"LOG_LEVEL"       env-default:"info"`
	Development bool   `yaml:"development" env:"LOG_DEVELOPMENT" env-default:"false"`
}

// LoadDotEnv loads .env from the working directory when present.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
}

// ParseConfig reads path (YAML, with env overrides) or, when path is empty,
// the environment only.
func ParseConfig(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Earnings.Per <= 0 {
		return fmt.Errorf("earnings.per must be positive, got %d", c.Earnings.Per)
	}
	if c.Earnings.Rate < 0 {
		return fmt.Errorf("earnings.rate must not be negative, got %v", c.Earnings.Rate)
	}
	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit values must not be negative")
	}
	return nil
}
