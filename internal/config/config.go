package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file.
const FileName = "nairabooks.yaml"

// Config represents the top-level nairabooks.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business entity and its tax profile.
type BusinessConfig struct {
	Name          string `yaml:"name"`
	TIN           string `yaml:"tin,omitempty"`
	EntityType    string `yaml:"entity_type"` // limited_company or sole_proprietor
	VATRegistered bool   `yaml:"vat_registered"`
}

// IsCompany reports whether the entity is assessed under CIT rather than PIT.
func (b BusinessConfig) IsCompany() bool {
	return b.EntityType != "sole_proprietor"
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// StorageConfig locates the snapshot database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// GitConfig controls git snapshotting of exported books.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a nairabooks.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:          businessName,
			EntityType:    entityType,
			VATRegistered: false,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Storage: StorageConfig{
			Path: "books.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Nairabooks",
			AuthorEmail: "books@nairabooks.dev",
		},
	}
}
