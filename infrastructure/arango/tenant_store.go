package arango

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	driver "github.com/arangodb/go-driver"
	"go.uber.org/zap"

	"cortex-backend/application/ports"
	"cortex-backend/domain/schema"
)

// TenantConnector builds tenant-scoped stores from raw bearer tokens.
type TenantConnector struct {
	endpoint string
	logger   *zap.Logger
}

// NewTenantConnector creates a new tenant connector
func NewTenantConnector(cfg Config, logger *zap.Logger) *TenantConnector {
	return &TenantConnector{
		endpoint: cfg.Endpoint,
		logger:   logger,
	}
}

var _ ports.TenantConnector = (*TenantConnector)(nil)

// Connect opens the caller's database with the caller's own token. The
// server enforces access; this layer adds no authorization of its own.
func (c *TenantConnector) Connect(ctx context.Context, database, bearerToken string) (ports.TenantStore, error) {
	client, err := newBearerClient(c.endpoint, bearerToken)
	if err != nil {
		return nil, mapError(err, "database")
	}
	db, err := client.Database(ctx, database)
	if err != nil {
		return nil, mapError(err, "database")
	}
	return &TenantStore{
		db:       db,
		conn:     client.Connection(),
		database: database,
		logger:   c.logger,
	}, nil
}

// TenantStore implements ports.TenantStore over one tenant database.
type TenantStore struct {
	db       driver.Database
	conn     driver.Connection
	database string
	logger   *zap.Logger
}

var _ ports.TenantStore = (*TenantStore)(nil)

// ListCollections returns metadata for every collection in the database.
func (s *TenantStore) ListCollections(ctx context.Context) ([]ports.CollectionMeta, error) {
	colls, err := s.db.Collections(ctx)
	if err != nil {
		return nil, mapError(err, "collections")
	}
	metas := make([]ports.CollectionMeta, 0, len(colls))
	for _, coll := range colls {
		props, err := coll.Properties(ctx)
		if err != nil {
			return nil, mapError(err, "collection")
		}
		metas = append(metas, ports.CollectionMeta{
			Name:   coll.Name(),
			System: props.IsSystem,
			Edge:   props.Type == driver.CollectionTypeEdge,
		})
	}
	return metas, nil
}

// CollectionInfo returns the information record of one collection.
func (s *TenantStore) CollectionInfo(ctx context.Context, name string) (*ports.CollectionInfo, error) {
	coll, err := s.db.Collection(ctx, name)
	if err != nil {
		return nil, mapError(err, "collection")
	}
	props, err := coll.Properties(ctx)
	if err != nil {
		return nil, mapError(err, "collection")
	}
	return &ports.CollectionInfo{
		ID:       props.ID,
		Name:     props.Name,
		System:   props.IsSystem,
		Type:     int(props.Type),
		Edge:     props.Type == driver.CollectionTypeEdge,
		Status:   int(props.Status),
		GlobalID: props.GloballyUniqueId,
	}, nil
}

// Documents returns every document of a collection via AQL.
func (s *TenantStore) Documents(ctx context.Context, collection string) ([]ports.Document, error) {
	cursor, err := s.db.Query(ctx, "FOR doc IN @@collection RETURN doc", map[string]interface{}{
		"@collection": collection,
	})
	if err != nil {
		return nil, mapError(err, "collection")
	}
	defer cursor.Close()

	docs := make([]ports.Document, 0)
	for {
		var doc ports.Document
		if _, err := cursor.ReadDocument(ctx, &doc); driver.IsNoMoreDocuments(err) {
			break
		} else if err != nil {
			return nil, mapError(err, "document")
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// InsertDocument inserts a document and returns it as stored.
func (s *TenantStore) InsertDocument(ctx context.Context, collection string, doc any) (ports.Document, error) {
	coll, err := s.db.Collection(ctx, collection)
	if err != nil {
		return nil, mapError(err, "collection")
	}
	var stored ports.Document
	if _, err := coll.CreateDocument(driver.WithReturnNew(ctx, &stored), doc); err != nil {
		return nil, mapError(err, "document")
	}
	return stored, nil
}

// ListGraphs returns every graph accessible in the database.
func (s *TenantStore) ListGraphs(ctx context.Context) ([]ports.GraphInfo, error) {
	graphs, err := s.db.Graphs(ctx)
	if err != nil {
		return nil, mapError(err, "graphs")
	}
	infos := make([]ports.GraphInfo, 0, len(graphs))
	for _, g := range graphs {
		info, err := s.GraphProperties(ctx, g.Name())
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

// GraphProperties fetches one graph's properties through the gharial
// API; the driver's graph type does not expose the full record.
func (s *TenantStore) GraphProperties(ctx context.Context, name string) (*ports.GraphInfo, error) {
	path := fmt.Sprintf("/_db/%s/_api/gharial/%s", url.PathEscape(s.database), url.PathEscape(name))
	req, err := s.conn.NewRequest(http.MethodGet, path)
	if err != nil {
		return nil, mapError(err, "graph")
	}
	resp, err := s.conn.Do(ctx, req)
	if err != nil {
		return nil, mapError(err, "graph")
	}
	if err := resp.CheckStatus(http.StatusOK); err != nil {
		return nil, mapError(err, "graph")
	}

	var body struct {
		Name            string `json:"name"`
		EdgeDefinitions []struct {
			Collection string   `json:"collection"`
			From       []string `json:"from"`
			To         []string `json:"to"`
		} `json:"edgeDefinitions"`
	}
	if err := resp.ParseBody("graph", &body); err != nil {
		return nil, mapError(err, "graph")
	}

	info := &ports.GraphInfo{Name: body.Name}
	for _, d := range body.EdgeDefinitions {
		info.EdgeDefinitions = append(info.EdgeDefinitions, schema.EdgeDefinition{
			Collection: d.Collection,
			From:       d.From,
			To:         d.To,
		})
	}
	return info, nil
}
