package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cortex-backend/domain/schema"
)

func TestProvisionFreshTenant(t *testing.T) {
	system := newFakeSystemStore()
	creds := newFakeCredentialStore()
	p := NewProvisioner(system, creds, zap.NewNop())

	result, err := p.Provision(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", result.Database)
	assert.True(t, result.CreatedDatabase)
	assert.True(t, result.CreatedGraph)
	assert.Len(t, result.CreatedCollections,
		len(schema.DocumentCollections)+len(schema.EdgeCollections))

	assert.True(t, system.databases["alice"])
	for _, name := range schema.DocumentCollections {
		edge, ok := system.collections["alice"][name]
		assert.True(t, ok, "missing document collection %q", name)
		assert.False(t, edge, "%q should be a document collection", name)
	}
	for _, name := range schema.EdgeCollections {
		edge, ok := system.collections["alice"][name]
		assert.True(t, ok, "missing edge collection %q", name)
		assert.True(t, edge, "%q should be an edge collection", name)
	}
	assert.True(t, system.graphs["alice"][schema.GraphName])
	assert.Equal(t, "alice", system.grants["alice"])
}

func TestProvisionIsIdempotent(t *testing.T) {
	system := newFakeSystemStore()
	creds := newFakeCredentialStore()
	p := NewProvisioner(system, creds, zap.NewNop())

	_, err := p.Provision(context.Background(), "alice")
	require.NoError(t, err)

	second, err := p.Provision(context.Background(), "alice")
	require.NoError(t, err)

	assert.False(t, second.CreatedDatabase)
	assert.False(t, second.CreatedGraph)
	assert.Empty(t, second.CreatedCollections)
}

func TestProvisionBackfillsPartialSchema(t *testing.T) {
	system := newFakeSystemStore()
	creds := newFakeCredentialStore()
	p := NewProvisioner(system, creds, zap.NewNop())

	// Simulate a crash after the database and a few collections were
	// created but before the graph existed.
	require.NoError(t, system.CreateDatabase(context.Background(), "alice"))
	require.NoError(t, system.CreateCollection(context.Background(), "alice", "Customers", false))
	require.NoError(t, system.CreateCollection(context.Background(), "alice", "EDGES", true))

	result, err := p.Provision(context.Background(), "alice")
	require.NoError(t, err)

	assert.False(t, result.CreatedDatabase)
	assert.True(t, result.CreatedGraph)
	assert.NotContains(t, result.CreatedCollections, "Customers")
	assert.NotContains(t, result.CreatedCollections, "EDGES")
	assert.Contains(t, result.CreatedCollections, "Suppliers")
	assert.Len(t, result.CreatedCollections,
		len(schema.DocumentCollections)+len(schema.EdgeCollections)-2)
}

func TestProvisionPropagatesStoreErrors(t *testing.T) {
	system := newFakeSystemStore()
	system.failOn = "CreateGraph"
	creds := newFakeCredentialStore()
	p := NewProvisioner(system, creds, zap.NewNop())

	_, err := p.Provision(context.Background(), "alice")
	assert.Error(t, err)
}

func TestReconcileSkipsRoot(t *testing.T) {
	system := newFakeSystemStore()
	creds := newFakeCredentialStore()
	require.NoError(t, creds.CreateAccount(context.Background(), "root", "toor", accountsProfile()))
	require.NoError(t, creds.CreateAccount(context.Background(), "alice", "pw", accountsProfile()))
	require.NoError(t, creds.CreateAccount(context.Background(), "bob", "pw", accountsProfile()))

	p := NewProvisioner(system, creds, zap.NewNop())
	require.NoError(t, p.Reconcile(context.Background()))

	assert.False(t, system.databases["root"], "root must not be provisioned")
	assert.True(t, system.databases["alice"])
	assert.True(t, system.databases["bob"])
}
