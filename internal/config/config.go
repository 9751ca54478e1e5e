package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/textenc"
)

// Config represents the top-level tms.yaml configuration.
type Config struct {
	Company    CompanyConfig    `yaml:"company"`
	Statement  StatementConfig  `yaml:"statement"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Git        GitConfig        `yaml:"git"`
}

// CompanyConfig identifies the company whose books are reconciled.
type CompanyConfig struct {
	Name             string `yaml:"name"`
	RegistrationCode string `yaml:"registration_code"`
}

// StatementConfig describes the bank export dialect and how to decode it.
type StatementConfig struct {
	Format string `yaml:"format"`
	// Encodings are tried in order until one decodes the export without
	// replacement characters.
	Encodings []string `yaml:"encodings"`
}

// ThresholdsConfig controls decision defaults on new review sessions.
type ThresholdsConfig struct {
	AutoConfirm float64 `yaml:"auto_confirm"`
	ReviewFlag  float64 `yaml:"review_flag"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a tms.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new workspace.
func Default(companyName, registrationCode string) *Config {
	return &Config{
		Company: CompanyConfig{
			Name:             companyName,
			RegistrationCode: registrationCode,
		},
		Statement: StatementConfig{
			Format:    "swedbank",
			Encodings: textenc.DefaultEncodings,
		},
		Thresholds: ThresholdsConfig{
			AutoConfirm: 0.95,
			ReviewFlag:  0.70,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "TMS",
			AuthorEmail: "tms@localhost",
		},
	}
}
