package client

import (
	internalhttp "github.com/forgeops/foreman-go/internal/http"
	"github.com/forgeops/foreman-go/pkg/foreman"
)

// NewTestClient creates a client rooted directly at baseURL, bypassing
// the hostname/port URL composition so tests can point it at an
// httptest server.
func NewTestClient(baseURL string, opts ...internalhttp.Option) *Client {
	httpClient := internalhttp.NewClient(baseURL, "", "", opts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		resolver:   &resolver{httpClient: httpClient},
	}

	client.initializeResourceClients()

	return client
}

// NewTestClientWithCache is NewTestClient with a resolver cache.
func NewTestClientWithCache(baseURL string, cache foreman.Cache) *Client {
	client := NewTestClient(baseURL)
	client.resolver.cache = cache

	return client
}
