package arango

import (
	"context"
	"net/http"

	driver "github.com/arangodb/go-driver"
	"go.uber.org/zap"

	"cortex-backend/application/ports"
	"cortex-backend/domain/accounts"
	pkgerrors "cortex-backend/pkg/errors"
)

// CredentialStore implements ports.CredentialStore on ArangoDB's user
// catalogue. Password verification and token minting are delegated to
// the server's own auth endpoint; no password material is handled
// locally on this path.
type CredentialStore struct {
	client   driver.Client
	endpoint string
	logger   *zap.Logger
}

// NewCredentialStore creates a new credential store
func NewCredentialStore(client driver.Client, cfg Config, logger *zap.Logger) *CredentialStore {
	return &CredentialStore{
		client:   client,
		endpoint: cfg.Endpoint,
		logger:   logger,
	}
}

var _ ports.CredentialStore = (*CredentialStore)(nil)

// HasAccount reports whether the username exists.
func (s *CredentialStore) HasAccount(ctx context.Context, username string) (bool, error) {
	exists, err := s.client.UserExists(ctx, username)
	if err != nil {
		return false, mapError(err, "user")
	}
	return exists, nil
}

// CreateAccount registers the account with its profile stored as the
// user's extra data.
func (s *CredentialStore) CreateAccount(ctx context.Context, username, password string, profile accounts.Profile) error {
	_, err := s.client.CreateUser(ctx, username, &driver.UserOptions{
		Password: password,
		Extra:    profile,
	})
	if err != nil {
		if driver.IsConflict(err) {
			return pkgerrors.NewConflictError("Username is already taken").WithCause(err)
		}
		return mapError(err, "user")
	}
	return nil
}

// Account resolves a stored account record including its profile.
func (s *CredentialStore) Account(ctx context.Context, username string) (*accounts.Account, error) {
	u, err := s.client.User(ctx, username)
	if err != nil {
		if driver.IsNotFound(err) {
			return nil, nil
		}
		return nil, mapError(err, "user")
	}
	return s.toAccount(u), nil
}

// Accounts lists every registered account, root included.
func (s *CredentialStore) Accounts(ctx context.Context) ([]accounts.Account, error) {
	users, err := s.client.Users(ctx)
	if err != nil {
		return nil, mapError(err, "users")
	}
	accts := make([]accounts.Account, 0, len(users))
	for _, u := range users {
		accts = append(accts, *s.toAccount(u))
	}
	return accts, nil
}

// VerifyCredentials exchanges username and password for the server's own
// bearer token via its open auth endpoint. Any failure, including a
// connection failure, surfaces as Unauthorized.
func (s *CredentialStore) VerifyCredentials(ctx context.Context, username, password string) (string, error) {
	conn, err := newConnection(s.endpoint)
	if err != nil {
		return "", pkgerrors.NewUnauthorizedError("").WithCause(err)
	}

	req, err := conn.NewRequest(http.MethodPost, "/_open/auth")
	if err != nil {
		return "", pkgerrors.NewUnauthorizedError("").WithCause(err)
	}
	if _, err := req.SetBody(map[string]string{
		"username": username,
		"password": password,
	}); err != nil {
		return "", pkgerrors.NewUnauthorizedError("").WithCause(err)
	}

	resp, err := conn.Do(ctx, req)
	if err != nil {
		return "", pkgerrors.NewUnauthorizedError("").WithCause(err)
	}
	if err := resp.CheckStatus(http.StatusOK); err != nil {
		return "", pkgerrors.NewUnauthorizedError("").WithCause(err)
	}

	var body struct {
		JWT string `json:"jwt"`
	}
	if err := resp.ParseBody("", &body); err != nil || body.JWT == "" {
		return "", pkgerrors.NewUnauthorizedError("").WithCause(err)
	}

	s.logger.Debug("Issued bearer token", zap.String("username", username))
	return body.JWT, nil
}

func (s *CredentialStore) toAccount(u driver.User) *accounts.Account {
	acct := &accounts.Account{
		Username: u.Name(),
		Active:   u.IsActive(),
	}
	// Extra data is schema flexible; decode what fits, drop nothing fatal.
	if err := u.Extra(&acct.Profile); err != nil {
		s.logger.Debug("Undecodable profile extra", zap.String("username", u.Name()), zap.Error(err))
	}
	return acct
}
