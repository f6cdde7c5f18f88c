package services

import (
	"context"
	"fmt"

	"cortex-backend/application/ports"
	"cortex-backend/domain/accounts"
	"cortex-backend/domain/schema"
	pkgerrors "cortex-backend/pkg/errors"
)

// fakeSystemStore is an in-memory ports.SystemStore tracking what the
// provisioner created.
type fakeSystemStore struct {
	databases   map[string]bool
	collections map[string]map[string]bool // database -> collection -> edge
	graphs      map[string]map[string]bool // database -> graph
	grants      map[string]string          // username -> database
	failOn      string                     // operation name that should error
}

func newFakeSystemStore() *fakeSystemStore {
	return &fakeSystemStore{
		databases:   make(map[string]bool),
		collections: make(map[string]map[string]bool),
		graphs:      make(map[string]map[string]bool),
		grants:      make(map[string]string),
	}
}

func (f *fakeSystemStore) fail(op string) error {
	if f.failOn == op {
		return fmt.Errorf("injected failure in %s", op)
	}
	return nil
}

func (f *fakeSystemStore) DatabaseExists(_ context.Context, name string) (bool, error) {
	if err := f.fail("DatabaseExists"); err != nil {
		return false, err
	}
	return f.databases[name], nil
}

func (f *fakeSystemStore) CreateDatabase(_ context.Context, name string) error {
	if err := f.fail("CreateDatabase"); err != nil {
		return err
	}
	f.databases[name] = true
	return nil
}

func (f *fakeSystemStore) CollectionExists(_ context.Context, database, name string) (bool, error) {
	if err := f.fail("CollectionExists"); err != nil {
		return false, err
	}
	_, ok := f.collections[database][name]
	return ok, nil
}

func (f *fakeSystemStore) CreateCollection(_ context.Context, database, name string, edge bool) error {
	if err := f.fail("CreateCollection"); err != nil {
		return err
	}
	if f.collections[database] == nil {
		f.collections[database] = make(map[string]bool)
	}
	f.collections[database][name] = edge
	return nil
}

func (f *fakeSystemStore) GraphExists(_ context.Context, database, name string) (bool, error) {
	if err := f.fail("GraphExists"); err != nil {
		return false, err
	}
	_, ok := f.graphs[database][name]
	return ok, nil
}

func (f *fakeSystemStore) CreateGraph(_ context.Context, database, name string, _ []schema.EdgeDefinition) error {
	if err := f.fail("CreateGraph"); err != nil {
		return err
	}
	if f.graphs[database] == nil {
		f.graphs[database] = make(map[string]bool)
	}
	f.graphs[database][name] = true
	return nil
}

func (f *fakeSystemStore) GrantReadWrite(_ context.Context, username, database string) error {
	if err := f.fail("GrantReadWrite"); err != nil {
		return err
	}
	f.grants[username] = database
	return nil
}

var _ ports.SystemStore = (*fakeSystemStore)(nil)

// fakeCredentialStore is an in-memory ports.CredentialStore.
type fakeCredentialStore struct {
	accounts  map[string]accounts.Account
	passwords map[string]string
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{
		accounts:  make(map[string]accounts.Account),
		passwords: make(map[string]string),
	}
}

func (f *fakeCredentialStore) HasAccount(_ context.Context, username string) (bool, error) {
	_, ok := f.accounts[username]
	return ok, nil
}

func (f *fakeCredentialStore) CreateAccount(_ context.Context, username, password string, profile accounts.Profile) error {
	if _, ok := f.accounts[username]; ok {
		return pkgerrors.NewConflictError("Username is already taken")
	}
	f.accounts[username] = accounts.Account{Username: username, Active: true, Profile: profile}
	f.passwords[username] = password
	return nil
}

func (f *fakeCredentialStore) Account(_ context.Context, username string) (*accounts.Account, error) {
	acct, ok := f.accounts[username]
	if !ok {
		return nil, nil
	}
	return &acct, nil
}

func (f *fakeCredentialStore) Accounts(_ context.Context) ([]accounts.Account, error) {
	out := make([]accounts.Account, 0, len(f.accounts))
	for _, acct := range f.accounts {
		out = append(out, acct)
	}
	return out, nil
}

func (f *fakeCredentialStore) VerifyCredentials(_ context.Context, username, password string) (string, error) {
	stored, ok := f.passwords[username]
	if !ok || stored != password {
		return "", pkgerrors.NewUnauthorizedError("")
	}
	return "token-for-" + username, nil
}

var _ ports.CredentialStore = (*fakeCredentialStore)(nil)

func accountsProfile() accounts.Profile {
	return accounts.Profile{}
}
