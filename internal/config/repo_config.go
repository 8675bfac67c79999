// Package config provides repository configuration management,
// including reading and writing preparator configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBase is the reference base branch used when nothing is configured
const DefaultBase = "master"

// configFileName is stored under .git/ so it never pollutes the work tree
const configFileName = ".preparator_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	// Base is the reference base branch used for fork-point computation
	Base *string `json:"base,omitempty"`
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// WriteRepoConfig writes the repository configuration
func WriteRepoConfig(repoRoot string, config *RepoConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repo config: %w", err)
	}
	if err := os.WriteFile(configPath(repoRoot), data, 0644); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}
	return nil
}

// GetBase returns the reference base branch. The PREPARATOR_BASE environment
// variable overrides the config file; the fallback default is "master".
func GetBase(repoRoot string) (string, error) {
	if base := os.Getenv("PREPARATOR_BASE"); base != "" {
		return base, nil
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Base != nil && *config.Base != "" {
		return *config.Base, nil
	}

	return DefaultBase, nil
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}
