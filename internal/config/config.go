package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type API struct {
	BaseURL     string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:3000"`
	ProdBaseURL string        `yaml:"prod_base_url" env:"API_PROD_BASE_URL" env-default:""`
	Timeout     time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"15s"`
}

type Config struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"dev"`
	API API    `yaml:"api"`
	// MetricsAddr, when set, serves Prometheus metrics for the lifetime of
	// the process (e.g. ":9091").
	MetricsAddr string `yaml:"metrics_addr" env:"METRICS_ADDR" env-default:""`
}

func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("can not read config file: %s", err.Error())
		}

		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("can not read config from environment: %s", err.Error())
	}

	return &cfg
}

// BaseURL selects the API origin for the current environment: the deployed
// origin in prod, the local development target otherwise.
func (c *Config) BaseURL() string {
	if c.Env == "prod" && c.API.ProdBaseURL != "" {
		return c.API.ProdBaseURL
	}

	return c.API.BaseURL
}
