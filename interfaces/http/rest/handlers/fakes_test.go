package handlers

import (
	"context"
	"net/http"

	"cortex-backend/application/ports"
	"cortex-backend/domain/accounts"
	"cortex-backend/domain/schema"
	"cortex-backend/pkg/auth"
	pkgerrors "cortex-backend/pkg/errors"
)

// recordingTenantStore is an in-memory ports.TenantStore that records
// inserts and serves canned listings.
type recordingTenantStore struct {
	collections []ports.CollectionMeta
	documents   map[string][]ports.Document
	graphs      []ports.GraphInfo
	inserted    map[string][]any
	err         error
}

func newRecordingTenantStore() *recordingTenantStore {
	return &recordingTenantStore{
		documents: make(map[string][]ports.Document),
		inserted:  make(map[string][]any),
	}
}

func (s *recordingTenantStore) ListCollections(context.Context) ([]ports.CollectionMeta, error) {
	return s.collections, s.err
}

func (s *recordingTenantStore) CollectionInfo(_ context.Context, name string) (*ports.CollectionInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ports.CollectionInfo{Name: name, Type: 2}, nil
}

func (s *recordingTenantStore) Documents(_ context.Context, collection string) ([]ports.Document, error) {
	return s.documents[collection], s.err
}

func (s *recordingTenantStore) InsertDocument(_ context.Context, collection string, doc any) (ports.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.inserted[collection] = append(s.inserted[collection], doc)
	return ports.Document{"_id": collection + "/stored"}, nil
}

func (s *recordingTenantStore) ListGraphs(context.Context) ([]ports.GraphInfo, error) {
	return s.graphs, s.err
}

func (s *recordingTenantStore) GraphProperties(_ context.Context, name string) (*ports.GraphInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, g := range s.graphs {
		if g.Name == name {
			return &g, nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("Graph " + name)
}

var _ ports.TenantStore = (*recordingTenantStore)(nil)

// withSession binds a test session to the request, standing in for the
// session middleware.
func withSession(r *http.Request, store ports.TenantStore) *http.Request {
	session := &auth.Session{
		Account: accounts.Account{Username: "alice", Active: true},
		Token:   "test-token",
		Store:   store,
	}
	return r.WithContext(auth.SetSessionInContext(r.Context(), session))
}

// memCredentialStore backs the auth handler tests.
type memCredentialStore struct {
	accounts  map[string]accounts.Account
	passwords map[string]string
}

func newMemCredentialStore() *memCredentialStore {
	return &memCredentialStore{
		accounts:  make(map[string]accounts.Account),
		passwords: make(map[string]string),
	}
}

func (m *memCredentialStore) HasAccount(_ context.Context, username string) (bool, error) {
	_, ok := m.accounts[username]
	return ok, nil
}

func (m *memCredentialStore) CreateAccount(_ context.Context, username, password string, profile accounts.Profile) error {
	if _, ok := m.accounts[username]; ok {
		return pkgerrors.NewConflictError("Username is already taken")
	}
	m.accounts[username] = accounts.Account{Username: username, Active: true, Profile: profile}
	m.passwords[username] = password
	return nil
}

func (m *memCredentialStore) Account(_ context.Context, username string) (*accounts.Account, error) {
	acct, ok := m.accounts[username]
	if !ok {
		return nil, nil
	}
	return &acct, nil
}

func (m *memCredentialStore) Accounts(context.Context) ([]accounts.Account, error) {
	out := make([]accounts.Account, 0, len(m.accounts))
	for _, acct := range m.accounts {
		out = append(out, acct)
	}
	return out, nil
}

func (m *memCredentialStore) VerifyCredentials(_ context.Context, username, password string) (string, error) {
	stored, ok := m.passwords[username]
	if !ok || stored != password {
		return "", pkgerrors.NewUnauthorizedError("")
	}
	return "minted-token-" + username, nil
}

var _ ports.CredentialStore = (*memCredentialStore)(nil)

// memSystemStore is a no-op ports.SystemStore for wiring a provisioner
// in handler tests.
type memSystemStore struct{}

func (memSystemStore) DatabaseExists(context.Context, string) (bool, error) { return false, nil }
func (memSystemStore) CreateDatabase(context.Context, string) error         { return nil }
func (memSystemStore) CollectionExists(context.Context, string, string) (bool, error) {
	return true, nil
}
func (memSystemStore) CreateCollection(context.Context, string, string, bool) error { return nil }
func (memSystemStore) GraphExists(context.Context, string, string) (bool, error)    { return true, nil }
func (memSystemStore) CreateGraph(context.Context, string, string, []schema.EdgeDefinition) error {
	return nil
}
func (memSystemStore) GrantReadWrite(context.Context, string, string) error { return nil }

var _ ports.SystemStore = memSystemStore{}

func accountsProfileEmpty() accounts.Profile {
	return accounts.Profile{}
}
