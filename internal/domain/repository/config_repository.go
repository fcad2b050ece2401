package repository

import (
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files and environment overrides.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadEnv() (*types.Config, error)
}
