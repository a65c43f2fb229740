// Package foreman provides types, interfaces, and helpers for working with
// the Foreman V2 API.
//
// # Overview
//
// The foreman package defines the generic resource representation
// (Resource, Payload), the search-query builder, the resource Identifier
// variants, and the interfaces for resource-oriented clients (e.g.
// HostsClient, ResourceClient). A concrete implementation is provided by
// the foremanclient package, which wires configuration and transport.
// Most consumers should import foremanclient to construct a client and
// then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/forgeops/foreman-go/pkg/foreman"
//	  "github.com/forgeops/foreman-go/pkg/foremanclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := foremanclient.New(foreman.NewConfig("foreman.example.com", 443, "admin", "changeme"))
//	  if err != nil { log.Fatal(err) }
//
//	  host, err := cli.Hosts().Get(ctx, foreman.ByName("web01.example.com"))
//	  if err != nil { log.Fatal(err) }
//	  _ = host
//	}
//
// # Searches
//
// Use SearchQuery to express Foreman's textual search syntax. Clauses are
// emitted in insertion order and joined with AND:
//
//	q := foreman.NewSearchQuery().Eq("name", "web01").Eq("domain_id", 3)
//	result, err := cli.Hosts().Search(ctx, q)
//	if err != nil { /* handle error */ }
//	if host, ok := result.Single(); ok { _ = host }
//
// A search that yields exactly one match collapses to that single
// resource via SearchResult.Single; zero or multiple matches are
// available through SearchResult.All.
//
// # Errors
//
// Failures reported by the server are represented by APIError, which
// carries the request URL, the HTTP status code, and the message
// extracted from the server's error body. Helpers such as IsNotFound,
// IsUnauthorized, and IsUnprocessable make it easy to branch on common
// cases. Transport-level failures (dial errors, timeouts, malformed
// JSON) are returned as wrapped plain errors, never as APIError.
package foreman
