package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xolan/tante/internal/config"
	"github.com/xolan/tante/internal/logger"
	"github.com/xolan/tante/internal/report"
)

// ConfigService provides configuration management operations
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the configuration file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Show renders the effective configuration as TOML.
func (s *ConfigService) Show() (string, error) {
	var buf bytes.Buffer
	if err := s.config.Encode(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Init creates a sample config file if it doesn't exist
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	logger.Info("config file created", "path", s.configPath)
	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return err
	}
	s.config = cfg
	return nil
}

// Themes lists the colour themes available for the theme setting.
func (s *ConfigService) Themes() []string {
	return report.AvailableThemes()
}
