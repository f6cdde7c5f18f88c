// Package arango adapts the ArangoDB Go driver to the application's
// store ports. All driver types stay behind this package boundary.
package arango

import (
	"fmt"

	driver "github.com/arangodb/go-driver"
	driverhttp "github.com/arangodb/go-driver/http"
)

// Config holds the connection settings for the database server.
type Config struct {
	Endpoint     string
	RootUser     string
	RootPassword string
}

// newConnection builds a fresh HTTP connection to the server. The driver
// binds authentication to a connection, so every client gets its own.
func newConnection(endpoint string) (driver.Connection, error) {
	conn, err := driverhttp.NewConnection(driverhttp.ConnectionConfig{
		Endpoints: []string{endpoint},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	return conn, nil
}

// NewSystemClient returns a driver client authenticated as the admin
// account, used for the _system database and schema management.
func NewSystemClient(cfg Config) (driver.Client, error) {
	conn, err := newConnection(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	client, err := driver.NewClient(driver.ClientConfig{
		Connection:     conn,
		Authentication: driver.BasicAuthentication(cfg.RootUser, cfg.RootPassword),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create system client: %w", err)
	}
	return client, nil
}

// newBearerClient returns a driver client that presents the caller's raw
// bearer token, so the server applies its own authorization.
func newBearerClient(endpoint, bearerToken string) (driver.Client, error) {
	conn, err := newConnection(endpoint)
	if err != nil {
		return nil, err
	}
	client, err := driver.NewClient(driver.ClientConfig{
		Connection:     conn,
		Authentication: driver.RawAuthentication("bearer " + bearerToken),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant client: %w", err)
	}
	return client, nil
}
