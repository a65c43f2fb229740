package foreman

import (
	"context"
	"time"
)

// ResourceClient provides the generic operations shared by every
// resource kind. Resource-specific accessors on Client are thin
// specializations of this interface.
type ResourceClient interface {
	// List returns every resource of the kind.
	List(ctx context.Context) ([]Resource, error)
	// Get fetches a single resource. An identifier that does not
	// resolve to exactly one resource yields (nil, nil).
	Get(ctx context.Context, id Identifier) (Resource, error)
	// Create submits the payload wrapped under the kind's wrapper key.
	Create(ctx context.Context, payload Payload) (Resource, error)
	// CreateWith is Create with additional top-level fields submitted
	// beside the wrapped payload, for kinds whose API nests one
	// sub-object inside another.
	CreateWith(ctx context.Context, payload Payload, extra Payload) (Resource, error)
	// Update submits the payload unwrapped to the single-resource endpoint.
	Update(ctx context.Context, id int, payload Payload) (Resource, error)
	// Delete removes a resource. The identifier must carry a numeric
	// id; deletes never resolve by name.
	Delete(ctx context.Context, id Identifier) (Resource, error)
	// Search runs a query against the kind's collection endpoint.
	Search(ctx context.Context, query *SearchQuery) (*SearchResult, error)
}

// HostsClient adds power control to the generic host operations.
type HostsClient interface {
	ResourceClient

	PowerOn(ctx context.Context, hostID int) (Resource, error)
	PowerOff(ctx context.Context, hostID int) (Resource, error)
	Reboot(ctx context.Context, hostID int) (Resource, error)
	PowerState(ctx context.Context, hostID int) (Resource, error)
}

// ComputeAttributesClient manages the compute attributes that bind a
// compute profile to a compute resource. Lookups compose two resolver
// calls (compute resource by name, compute profile by name) and filter
// the resource's embedded attribute collection.
type ComputeAttributesClient interface {
	// ForComputeResource returns the attribute sets of every profile
	// assigned to the named compute resource, or nil when the resource
	// does not resolve.
	ForComputeResource(ctx context.Context, computeResource string) ([]Resource, error)
	// ForProfile returns the attribute sets of the named profile on the
	// named compute resource.
	ForProfile(ctx context.Context, computeResource, profile string) ([]Resource, error)
	// Create posts vm_attrs for a profile on a compute resource. The
	// parent ids travel as top-level fields beside the wrapped payload.
	Create(ctx context.Context, computeResourceID, profileID int, vmAttrs Payload) (Resource, error)
	// Update replaces the vm_attrs of an existing attribute set.
	Update(ctx context.Context, id int, vmAttrs Payload) (Resource, error)
}

// Client is the facade over all resource-specific clients.
type Client interface {
	Architectures() ResourceClient
	CommonParameters() ResourceClient
	ComputeAttributes() ComputeAttributesClient
	ComputeProfiles() ResourceClient
	ComputeResources() ResourceClient
	ConfigTemplates() ResourceClient
	Domains() ResourceClient
	Environments() ResourceClient
	Hostgroups() ResourceClient
	Hosts() HostsClient
	Locations() ResourceClient
	Media() ResourceClient
	OperatingSystems() ResourceClient
	Organizations() ResourceClient
	PartitionTables() ResourceClient
	SmartProxies() ResourceClient
	Subnets() ResourceClient

	// Resource returns a client for a resource kind the library does
	// not model. resourceType is the collection path segment, wrapper
	// the payload key used on create.
	Resource(resourceType, wrapper string) ResourceClient
}

// Config represents client configuration for building a foreman.Client.
// All fields are read once at construction; the resulting client holds
// no mutable configuration state.
type Config struct {
	// Hostname of the Foreman server.
	Hostname string
	// Port of the API endpoint. Defaults to 443.
	Port int

	// Username and Password for basic authentication. Held for the
	// lifetime of the client.
	Username string
	Password string

	// SkipTLSVerify disables certificate verification for this client
	// only. Foreman deployments commonly run on self-signed
	// certificates, so NewConfig defaults this to true; a zero-value
	// Config verifies. There is no process-global TLS state.
	SkipTLSVerify bool

	// Timeout overrides the transport's default request timeout.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables HTTP request/response logging when a Logger is set.
	Debug bool
	// Logger receives debug events from the transport.
	Logger Logger

	// Cache, when set, memoizes successful name-to-id resolutions.
	Cache Cache
}

// NewConfig returns a Config with the defaults matching a stock Foreman
// deployment: port 443 and TLS verification skipped.
func NewConfig(hostname string, port int, username, password string) *Config {
	if port == 0 {
		port = 443
	}

	return &Config{
		Hostname:      hostname,
		Port:          port,
		Username:      username,
		Password:      password,
		SkipTLSVerify: true,
	}
}
