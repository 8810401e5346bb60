package service

import (
	"github.com/xolan/tante/internal/config"
	"github.com/xolan/tante/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Tracking *TrackingService
	Report   *ReportService
	Status   *StatusService
	Storage  *StorageService
	Config   *ConfigService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	storagePath, err := storage.GetStoragePath(cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(storagePath, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(storagePath, configPath string, cfg config.Config) *Services {
	store := storage.NewStore(storagePath)

	return &Services{
		Tracking: NewTrackingService(store, cfg),
		Report:   NewReportService(store, cfg),
		Status:   NewStatusService(store, cfg),
		Storage:  NewStorageService(store),
		Config:   NewConfigService(configPath, cfg),
	}
}
