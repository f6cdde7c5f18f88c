package services

import (
	"context"
	"fmt"

	"cortex-backend/application/ports"
	"cortex-backend/domain/schema"

	"go.uber.org/zap"
)

// RootAccount is the admin account excluded from reconciliation.
const RootAccount = "root"

// ProvisionResult records what a provisioning pass actually created.
// A second pass over the same tenant yields an empty result.
type ProvisionResult struct {
	Database           string   `json:"database"`
	CreatedDatabase    bool     `json:"created_database"`
	CreatedCollections []string `json:"created_collections,omitempty"`
	CreatedGraph       bool     `json:"created_graph"`
}

// Provisioner seeds tenant databases with the fixture schema. One
// idempotent routine serves both registration and the startup
// reconciliation sweep.
type Provisioner struct {
	system ports.SystemStore
	creds  ports.CredentialStore
	logger *zap.Logger
}

// NewProvisioner creates a new provisioner
func NewProvisioner(system ports.SystemStore, creds ports.CredentialStore, logger *zap.Logger) *Provisioner {
	return &Provisioner{
		system: system,
		creds:  creds,
		logger: logger,
	}
}

// Provision ensures the tenant database for username exists and carries
// the full fixture schema, then grants the account read-write on it.
// Every step is check-then-create, so re-running after a crash mid-way
// is the recovery path. No transaction spans the steps: concurrent
// provisioning of one tenant can race, but duplicate creates are
// harmless no-ops.
func (p *Provisioner) Provision(ctx context.Context, username string) (*ProvisionResult, error) {
	result := &ProvisionResult{Database: username}

	exists, err := p.system.DatabaseExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check database %s: %w", username, err)
	}
	if !exists {
		if err := p.system.CreateDatabase(ctx, username); err != nil {
			return nil, fmt.Errorf("failed to create database %s: %w", username, err)
		}
		result.CreatedDatabase = true
		p.logger.Info("Created tenant database", zap.String("database", username))
	}

	for _, name := range schema.DocumentCollections {
		created, err := p.ensureCollection(ctx, username, name, false)
		if err != nil {
			return nil, err
		}
		if created {
			result.CreatedCollections = append(result.CreatedCollections, name)
		}
	}

	for _, name := range schema.EdgeCollections {
		created, err := p.ensureCollection(ctx, username, name, true)
		if err != nil {
			return nil, err
		}
		if created {
			result.CreatedCollections = append(result.CreatedCollections, name)
		}
	}

	graphExists, err := p.system.GraphExists(ctx, username, schema.GraphName)
	if err != nil {
		return nil, fmt.Errorf("failed to check graph in %s: %w", username, err)
	}
	if !graphExists {
		if err := p.system.CreateGraph(ctx, username, schema.GraphName, schema.GraphDefinitions); err != nil {
			return nil, fmt.Errorf("failed to create graph in %s: %w", username, err)
		}
		result.CreatedGraph = true
		p.logger.Info("Created tenant graph",
			zap.String("database", username),
			zap.String("graph", schema.GraphName),
		)
	}

	if err := p.system.GrantReadWrite(ctx, username, username); err != nil {
		return nil, fmt.Errorf("failed to grant access on %s: %w", username, err)
	}

	return result, nil
}

// Reconcile sweeps every registered account except root and re-applies
// provisioning, backfilling tenants whose database or schema predates
// the current fixture. Safe to run at every startup.
func (p *Provisioner) Reconcile(ctx context.Context) error {
	accts, err := p.creds.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	for _, acct := range accts {
		if acct.Username == RootAccount {
			continue
		}
		result, err := p.Provision(ctx, acct.Username)
		if err != nil {
			return fmt.Errorf("reconciliation failed for %s: %w", acct.Username, err)
		}
		if result.CreatedDatabase || result.CreatedGraph || len(result.CreatedCollections) > 0 {
			p.logger.Info("Backfilled tenant schema",
				zap.String("database", acct.Username),
				zap.Bool("created_database", result.CreatedDatabase),
				zap.Int("created_collections", len(result.CreatedCollections)),
				zap.Bool("created_graph", result.CreatedGraph),
			)
		}
	}

	return nil
}

func (p *Provisioner) ensureCollection(ctx context.Context, database, name string, edge bool) (bool, error) {
	exists, err := p.system.CollectionExists(ctx, database, name)
	if err != nil {
		return false, fmt.Errorf("failed to check collection %s in %s: %w", name, database, err)
	}
	if exists {
		return false, nil
	}
	if err := p.system.CreateCollection(ctx, database, name, edge); err != nil {
		return false, fmt.Errorf("failed to create collection %s in %s: %w", name, database, err)
	}
	p.logger.Debug("Created collection",
		zap.String("database", database),
		zap.String("collection", name),
		zap.Bool("edge", edge),
	)
	return true, nil
}
