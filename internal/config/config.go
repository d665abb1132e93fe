// Package config reads and writes saldo.yaml, the per-ledger settings
// file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside a ledger directory.
const FileName = "saldo.yaml"

// Config represents the top-level saldo.yaml configuration.
type Config struct {
	Business   BusinessConfig   `yaml:"business"`
	Storage    StorageConfig    `yaml:"storage"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Git        GitConfig        `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
}

// StorageConfig locates the entry database and baseline snapshot,
// relative to the ledger root.
type StorageConfig struct {
	Database string `yaml:"database"`
	Baseline string `yaml:"baseline"`
}

// ThresholdsConfig tunes the large-transaction alert ratios.
type ThresholdsConfig struct {
	LargeVsAssets float64 `yaml:"large_vs_assets"`
	LargeVsCash   float64 `yaml:"large_vs_cash"`
}

// GitConfig controls git snapshots of the ledger directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a saldo.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new ledger.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Storage: StorageConfig{
			Database: "ledger.db",
			Baseline: "baseline.json",
		},
		Thresholds: ThresholdsConfig{
			LargeVsAssets: 0.20,
			LargeVsCash:   0.50,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Saldo",
			AuthorEmail: "ledger@saldo.dev",
		},
	}
}
