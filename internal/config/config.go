package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	ServerAddress   string `env:"SERVER_ADDRESS"`
	DatabaseDSN     string `env:"DATABASE_DSN"`
	FileStoragePath string `env:"FILE_STORAGE_PATH"`
	AuthSecret      string `env:"AUTH_SECRET"`
	PageSize        int    `env:"PAGE_SIZE"`
	SMTPHost        string `env:"SMTP_HOST"`
	SMTPPort        int    `env:"SMTP_PORT"`
	SMTPUser        string `env:"SMTP_USER"`
	SMTPPassword    string `env:"SMTP_PASSWORD"`
	SMTPFrom        string `env:"SMTP_FROM"`
}

func ParseFlags() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	envServerAddress := cfg.ServerAddress
	envDatabaseDSN := cfg.DatabaseDSN
	envFileStoragePath := cfg.FileStoragePath
	envAuthSecret := cfg.AuthSecret
	envPageSize := cfg.PageSize

	flag.StringVar(&cfg.ServerAddress, "a", "localhost:8080", "Address of the server")
	flag.StringVar(&cfg.DatabaseDSN, "d", "", "PostgreSQL DSN (in-memory storage when empty)")
	flag.StringVar(&cfg.FileStoragePath, "f", "", "Path for the JSON storage snapshot")
	flag.StringVar(&cfg.AuthSecret, "s", "", "Secret key for signing auth cookies")
	flag.IntVar(&cfg.PageSize, "p", 10, "Default history page size")

	flag.Parse()

	if envServerAddress != "" {
		cfg.ServerAddress = envServerAddress
	}
	if envDatabaseDSN != "" {
		cfg.DatabaseDSN = envDatabaseDSN
	}
	if envFileStoragePath != "" {
		cfg.FileStoragePath = envFileStoragePath
	}
	if envAuthSecret != "" {
		cfg.AuthSecret = envAuthSecret
	}
	if envPageSize != 0 {
		cfg.PageSize = envPageSize
	}

	cfg.applyDefaultValues()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if c.AuthSecret == "" {
		return fmt.Errorf("auth secret cannot be empty")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be positive")
	}
	return nil
}

func (c *Config) applyDefaultValues() {
	if c.ServerAddress == "" {
		c.ServerAddress = getDefaultServerAddress()
	}

	if c.AuthSecret == "" {
		c.AuthSecret = getDefaultAuthSecret()
	}

	if c.PageSize == 0 {
		c.PageSize = getDefaultPageSize()
	}

	if c.SMTPPort == 0 {
		c.SMTPPort = 587
	}
}

func getDefaultServerAddress() string {
	return "localhost:8080"
}

func getDefaultAuthSecret() string {
	return "qr-service-secret"
}

func getDefaultPageSize() int {
	return 10
}
