package service

import (
	"context"

	"spendbook/internal/config"
	"spendbook/internal/logger"
)

type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService constructs the AppInfoService from the application config.
func NewAppInfoService(appCfg config.App, log *logger.Logger) AppInfoService {
	version := appCfg.Version
	if version == "" {
		version = "N/A"
	}

	return &appInfoService{
		version: version,
		logger:  log.GetChildLogger(),
	}
}

func (s *appInfoService) Version(_ context.Context) string {
	return s.version
}
