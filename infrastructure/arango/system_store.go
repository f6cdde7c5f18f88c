package arango

import (
	"context"

	driver "github.com/arangodb/go-driver"
	"go.uber.org/zap"

	"cortex-backend/application/ports"
	"cortex-backend/domain/schema"
)

// SystemStore implements ports.SystemStore with admin credentials. All
// creates tolerate losing a race to a concurrent create: the duplicate
// error maps to Conflict and callers existence-check first anyway.
type SystemStore struct {
	client driver.Client
	logger *zap.Logger
}

// NewSystemStore creates a new system store
func NewSystemStore(client driver.Client, logger *zap.Logger) *SystemStore {
	return &SystemStore{
		client: client,
		logger: logger,
	}
}

var _ ports.SystemStore = (*SystemStore)(nil)

// DatabaseExists reports whether the named database exists.
func (s *SystemStore) DatabaseExists(ctx context.Context, name string) (bool, error) {
	exists, err := s.client.DatabaseExists(ctx, name)
	if err != nil {
		return false, mapError(err, "database")
	}
	return exists, nil
}

// CreateDatabase creates the named database.
func (s *SystemStore) CreateDatabase(ctx context.Context, name string) error {
	if _, err := s.client.CreateDatabase(ctx, name, nil); err != nil {
		return mapError(err, "database")
	}
	return nil
}

// CollectionExists reports whether the collection exists in the database.
func (s *SystemStore) CollectionExists(ctx context.Context, database, name string) (bool, error) {
	db, err := s.client.Database(ctx, database)
	if err != nil {
		return false, mapError(err, "database")
	}
	exists, err := db.CollectionExists(ctx, name)
	if err != nil {
		return false, mapError(err, "collection")
	}
	return exists, nil
}

// CreateCollection creates a document or edge collection.
func (s *SystemStore) CreateCollection(ctx context.Context, database, name string, edge bool) error {
	db, err := s.client.Database(ctx, database)
	if err != nil {
		return mapError(err, "database")
	}
	options := &driver.CreateCollectionOptions{Type: driver.CollectionTypeDocument}
	if edge {
		options.Type = driver.CollectionTypeEdge
	}
	if _, err := db.CreateCollection(ctx, name, options); err != nil {
		return mapError(err, "collection")
	}
	return nil
}

// GraphExists reports whether the named graph exists in the database.
func (s *SystemStore) GraphExists(ctx context.Context, database, name string) (bool, error) {
	db, err := s.client.Database(ctx, database)
	if err != nil {
		return false, mapError(err, "database")
	}
	exists, err := db.GraphExists(ctx, name)
	if err != nil {
		return false, mapError(err, "graph")
	}
	return exists, nil
}

// CreateGraph creates the named graph with the given edge definitions.
func (s *SystemStore) CreateGraph(ctx context.Context, database, name string, definitions []schema.EdgeDefinition) error {
	db, err := s.client.Database(ctx, database)
	if err != nil {
		return mapError(err, "database")
	}
	defs := make([]driver.EdgeDefinition, 0, len(definitions))
	for _, d := range definitions {
		defs = append(defs, driver.EdgeDefinition{
			Collection: d.Collection,
			From:       d.From,
			To:         d.To,
		})
	}
	if _, err := db.CreateGraphV2(ctx, name, &driver.CreateGraphOptions{
		EdgeDefinitions: defs,
	}); err != nil {
		return mapError(err, "graph")
	}
	return nil
}

// GrantReadWrite gives the account read-write access on the database.
func (s *SystemStore) GrantReadWrite(ctx context.Context, username, database string) error {
	u, err := s.client.User(ctx, username)
	if err != nil {
		return mapError(err, "user")
	}
	db, err := s.client.Database(ctx, database)
	if err != nil {
		return mapError(err, "database")
	}
	if err := u.SetDatabaseAccess(ctx, db, driver.GrantReadWrite); err != nil {
		return mapError(err, "permission")
	}
	s.logger.Debug("Granted rw access",
		zap.String("username", username),
		zap.String("database", database),
	)
	return nil
}
