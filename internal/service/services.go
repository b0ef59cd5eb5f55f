package service

import (
	"spendbook/internal/config"
	"spendbook/internal/logger"
	"spendbook/internal/store"
	"spendbook/internal/validators"
)

// Services aggregates every service the transports depend on.
type Services struct {
	AccountService
	AppInfoService
}

// NewServices wires the store and the configuration into a ready-to-use
// service set.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	validator := validators.NewAccountValidator()

	return &Services{
		AccountService: NewAccountService(storages.UserRepository, validator, cfg.App, log),
		AppInfoService: NewAppInfoService(cfg.App, log),
	}
}
