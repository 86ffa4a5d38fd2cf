package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/railport/railport/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked for in the working directory when no explicit
// config path is given.
const DefaultFileName = ".railport.yaml"

// Environment variables that override the static values, so CI can supply
// them without editing the config file.
const (
	envProduct = "RAILPORT_PRODUCT"
	envParent  = "RAILPORT_PARENT"
	envTeam    = "RAILPORT_TEAM"
)

// YAMLLoader implements domain.ConfigLoader by reading a YAML config file
// and overlaying environment overrides.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the config at path, or DefaultFileName when path is empty.
// A missing default file yields DefaultConfig; a missing explicit path is
// an error. Values from the environment (and a .env file, if present) win
// over the file's static values.
func (l *YAMLLoader) Load(path string) (domain.ProjectConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file is fine; stock TestRail columns apply.
	default:
		return domain.ProjectConfig{}, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *domain.ProjectConfig) {
	_ = godotenv.Load()

	if v := os.Getenv(envProduct); v != "" {
		cfg.Static.Product = v
	}
	if v := os.Getenv(envParent); v != "" {
		cfg.Static.Parent = v
	}
	if v := os.Getenv(envTeam); v != "" {
		cfg.Static.EngineeringTeam = v
	}
}
