package contentserver

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServerConfig configures the content server process.
type ServerConfig struct {
	Addr     string `env:"CONTENT_SERVER_ADDR"` // Listen address (default ":8080")
	DBPath   string `env:"CONTENT_DB_PATH"`     // Table file; empty uses the embedded table
	LogLevel string `env:"LOG_LEVEL"`           // debug, info, warn, error (default "info")
}

func (c *ServerConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadServerConfig reads envFile when it exists, then the environment.
func LoadServerConfig(envFile string) (ServerConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return ServerConfig{}, fmt.Errorf("contentserver: load %s: %w", envFile, err)
		}
	}
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("contentserver: parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// LoadTable returns the table named by DBPath, or the embedded default.
func (c ServerConfig) LoadTable() (Table, error) {
	if c.DBPath == "" {
		return Default()
	}
	return LoadFile(c.DBPath)
}
