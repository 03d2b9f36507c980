// Package config loads the application configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Admin   AdminConfig   `yaml:"admin"`
}

type ServerConfig struct {
	// Addr is the listen address for the HTTP surface.
	Addr string `yaml:"addr"`
}

type StorageConfig struct {
	// Driver selects the document store backend: "file" or "postgres".
	Driver string `yaml:"driver"`
	// DataDir holds the collection files when the file driver is used.
	DataDir  string         `yaml:"data_dir"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

type AdminConfig struct {
	// RegistrationCode is the shared secret required to register an admin
	// account. Deliberately a plain configured string, not a credential
	// system.
	RegistrationCode string `yaml:"registration_code"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":3000"},
		Storage: StorageConfig{
			Driver:  "file",
			DataDir: "data",
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "postgres",
				Password: "postgres",
				Database: "restaurant",
			},
		},
		Admin: AdminConfig{RegistrationCode: "admin123"},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Storage.Driver != "file" && cfg.Storage.Driver != "postgres" {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	return cfg, nil
}
