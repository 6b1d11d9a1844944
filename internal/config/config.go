package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Port          string `yaml:"port"`
	DBDriver      string `yaml:"db_driver"`
	DBDSN         string `yaml:"db_dsn"`
	SessionSecret string `yaml:"session_secret"`
}

// Default returns the out-of-the-box configuration: local sqlite database,
// port 3000, and a secret only suitable for development.
func Default() *Config {
	return &Config{
		Port:          "3000",
		DBDriver:      "sqlite3",
		DBDSN:         "energytrack.db",
		SessionSecret: "dev-only-insecure-secret",
	}
}

func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv lets the process environment override file settings. A postgres
// DATABASE_URL also switches the driver.
func (c *Config) ApplyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		c.DBDSN = dsn
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			c.DBDriver = "postgres"
		}
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		c.SessionSecret = secret
	}
}
