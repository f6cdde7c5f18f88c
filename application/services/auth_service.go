package services

import (
	"context"

	"cortex-backend/application/ports"
	"cortex-backend/domain/accounts"
	pkgerrors "cortex-backend/pkg/errors"

	"go.uber.org/zap"
)

// RegisterResult is returned to a freshly registered account: the
// provisioning outcome plus the bearer token for the session cookie.
type RegisterResult struct {
	Provision *ProvisionResult `json:"status"`
	Token     string           `json:"-"`
}

// AuthService implements registration and login on top of the
// credential store and the tenant provisioner.
type AuthService struct {
	creds       ports.CredentialStore
	provisioner *Provisioner
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(creds ports.CredentialStore, provisioner *Provisioner, logger *zap.Logger) *AuthService {
	return &AuthService{
		creds:       creds,
		provisioner: provisioner,
		logger:      logger,
	}
}

// Register creates the account, provisions its tenant database, and
// exchanges the fresh credentials for a bearer token. Conflict when the
// username is taken; the existing tenant is left untouched in that case.
func (s *AuthService) Register(ctx context.Context, username, password string, profile accounts.Profile) (*RegisterResult, error) {
	taken, err := s.creds.HasAccount(ctx, username)
	if err != nil {
		return nil, pkgerrors.NewUpstreamError("").WithCause(err)
	}
	if taken {
		return nil, pkgerrors.NewConflictError("Username is already taken")
	}

	if err := s.creds.CreateAccount(ctx, username, password, profile); err != nil {
		if pkgerrors.IsType(err, pkgerrors.ErrorTypeConflict) {
			return nil, err
		}
		return nil, pkgerrors.NewUpstreamError("").WithCause(err)
	}
	s.logger.Info("Created account", zap.String("username", username))

	result, err := s.provisioner.Provision(ctx, username)
	if err != nil {
		return nil, pkgerrors.NewUpstreamError("").WithCause(err)
	}

	token, err := s.creds.VerifyCredentials(ctx, username, password)
	if err != nil {
		return nil, pkgerrors.NewUnauthorizedError("").WithCause(err)
	}

	return &RegisterResult{Provision: result, Token: token}, nil
}

// Login delegates the password check to the database server and returns
// the bearer token it minted. Any failure is the same generic
// Unauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	token, err := s.creds.VerifyCredentials(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", zap.String("username", username))
		return "", pkgerrors.NewUnauthorizedError("Incorrect username or password").WithCause(err)
	}
	return token, nil
}

// ResolveAccount looks up a registered account by username.
func (s *AuthService) ResolveAccount(ctx context.Context, username string) (*accounts.Account, error) {
	acct, err := s.creds.Account(ctx, username)
	if err != nil {
		return nil, pkgerrors.NewUnauthorizedError("").WithCause(err)
	}
	if acct == nil {
		return nil, pkgerrors.NewUnauthorizedError("")
	}
	return acct, nil
}
