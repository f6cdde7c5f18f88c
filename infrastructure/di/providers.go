package di

import (
	driver "github.com/arangodb/go-driver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cortex-backend/application/ports"
	"cortex-backend/application/services"
	"cortex-backend/infrastructure/arango"
	"cortex-backend/infrastructure/config"
	"cortex-backend/pkg/auth"
)

// ProvideLogger creates the process-wide logger from run mode and level.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zapCfg.Build()
}

// ProvideArangoConfig maps application config onto the driver adapter.
func ProvideArangoConfig(cfg *config.Config) arango.Config {
	return arango.Config{
		Endpoint:     cfg.BaseDBURL,
		RootUser:     cfg.RootUser,
		RootPassword: cfg.RootPassword,
	}
}

// ProvideSystemClient creates the admin-scoped database client
func ProvideSystemClient(acfg arango.Config) (driver.Client, error) {
	return arango.NewSystemClient(acfg)
}

// ProvideCredentialStore creates the credential store adapter
func ProvideCredentialStore(client driver.Client, acfg arango.Config, logger *zap.Logger) ports.CredentialStore {
	return arango.NewCredentialStore(client, acfg, logger)
}

// ProvideSystemStore creates the admin schema store
func ProvideSystemStore(client driver.Client, logger *zap.Logger) ports.SystemStore {
	return arango.NewSystemStore(client, logger)
}

// ProvideTenantConnector creates the tenant connector
func ProvideTenantConnector(acfg arango.Config, logger *zap.Logger) ports.TenantConnector {
	return arango.NewTenantConnector(acfg, logger)
}

// ProvideTokenService creates the session token service
func ProvideTokenService(cfg *config.Config) (*auth.TokenService, error) {
	return auth.NewTokenService(auth.TokenConfig{
		SigningMethod: cfg.Algorithm,
		SecretKey:     cfg.JWTSecret,
		Issuer:        cfg.TokenIssuer,
		DefaultTTL:    cfg.TokenTTL(),
	})
}

// ProvideProvisioner creates the tenant provisioner
func ProvideProvisioner(system ports.SystemStore, creds ports.CredentialStore, logger *zap.Logger) *services.Provisioner {
	return services.NewProvisioner(system, creds, logger)
}

// ProvideAuthService creates the auth service
func ProvideAuthService(creds ports.CredentialStore, provisioner *services.Provisioner, logger *zap.Logger) *services.AuthService {
	return services.NewAuthService(creds, provisioner, logger)
}
