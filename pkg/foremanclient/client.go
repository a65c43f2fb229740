// Package foremanclient provides the entry point for creating Foreman
// API clients.
package foremanclient

import (
	"fmt"

	"github.com/forgeops/foreman-go/internal/client"
	"github.com/forgeops/foreman-go/pkg/foreman"
)

// New creates a new Foreman API client. The config's hostname and port
// are composed once into the API root https://{host}:{port}/api/v2;
// credentials and TLS policy are fixed for the client's lifetime.
func New(config *foreman.Config) (foreman.Client, error) {
	if config == nil {
		return nil, foreman.ErrConfigRequired
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return cli, nil
}

// NewWithPassword creates a client with the default configuration for
// the given endpoint and basic credentials. TLS verification is
// skipped, matching NewConfig; pass an explicit Config to New to
// verify certificates.
func NewWithPassword(hostname string, port int, username, password string) (foreman.Client, error) {
	return New(foreman.NewConfig(hostname, port, username, password))
}
