package di

import (
	"go.uber.org/zap"

	"cortex-backend/application/ports"
	"cortex-backend/application/services"
	"cortex-backend/infrastructure/config"
	"cortex-backend/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	TokenService    *auth.TokenService
	CredentialStore ports.CredentialStore
	SystemStore     ports.SystemStore
	TenantConnector ports.TenantConnector
	Provisioner     *services.Provisioner
	AuthService     *services.AuthService
}
