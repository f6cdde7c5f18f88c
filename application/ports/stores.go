package ports

import (
	"context"

	"cortex-backend/domain/accounts"
	"cortex-backend/domain/schema"
)

// CollectionMeta is the metadata returned for one collection listing
// entry.
type CollectionMeta struct {
	Name   string `json:"name"`
	System bool   `json:"system"`
	Edge   bool   `json:"edge"`
}

// CollectionInfo is the full information record of a single collection.
type CollectionInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	System   bool   `json:"system"`
	Type     int    `json:"type"`
	Edge     bool   `json:"edge"`
	Status   int    `json:"status"`
	GlobalID string `json:"global_id"`
}

// GraphInfo describes a named graph and its edge definitions.
type GraphInfo struct {
	Name            string                  `json:"name"`
	EdgeDefinitions []schema.EdgeDefinition `json:"edge_definitions"`
}

// Document is a raw database document.
type Document = map[string]any

// CredentialStore wraps the database server's own user and auth
// primitives. It is a port: the domain never sees the driver types.
type CredentialStore interface {
	// HasAccount reports whether the username exists in the user catalogue.
	HasAccount(ctx context.Context, username string) (bool, error)

	// CreateAccount registers the account. Fails with Conflict if the
	// username is taken.
	CreateAccount(ctx context.Context, username, password string, profile accounts.Profile) error

	// Account resolves a stored account record.
	Account(ctx context.Context, username string) (*accounts.Account, error)

	// Accounts lists every registered account, root included.
	Accounts(ctx context.Context) ([]accounts.Account, error)

	// VerifyCredentials delegates the password check to the database
	// server and returns the opaque bearer token it minted. Connection
	// and auth failures both surface as Unauthorized.
	VerifyCredentials(ctx context.Context, username, password string) (string, error)
}

// SystemStore exposes the admin-scoped schema operations the provisioner
// needs. Every create is expected to tolerate racing duplicates upstream.
type SystemStore interface {
	DatabaseExists(ctx context.Context, name string) (bool, error)
	CreateDatabase(ctx context.Context, name string) error

	CollectionExists(ctx context.Context, database, name string) (bool, error)
	CreateCollection(ctx context.Context, database, name string, edge bool) error

	GraphExists(ctx context.Context, database, name string) (bool, error)
	CreateGraph(ctx context.Context, database, name string, definitions []schema.EdgeDefinition) error

	// GrantReadWrite gives the account read-write permission on the
	// named database.
	GrantReadWrite(ctx context.Context, username, database string) error
}

// TenantConnector builds a tenant-scoped store from the caller's raw
// bearer token. The token is passed through to the database layer for
// its own authorization, never re-derived from claims.
type TenantConnector interface {
	Connect(ctx context.Context, database, bearerToken string) (TenantStore, error)
}

// TenantStore is the capability surface a request handler gets over the
// caller's own database. Keeping it narrow keeps the underlying store
// swappable.
type TenantStore interface {
	ListCollections(ctx context.Context) ([]CollectionMeta, error)
	CollectionInfo(ctx context.Context, name string) (*CollectionInfo, error)
	Documents(ctx context.Context, collection string) ([]Document, error)
	InsertDocument(ctx context.Context, collection string, doc any) (Document, error)
	ListGraphs(ctx context.Context) ([]GraphInfo, error)
	GraphProperties(ctx context.Context, name string) (*GraphInfo, error)
}
