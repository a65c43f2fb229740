// Package client implements the foreman.Client facade: resource path
// construction, the generic resource operations, name-to-id resolution,
// and the per-kind accessors derived from the kind table.
package client

import (
	"fmt"

	internalhttp "github.com/forgeops/foreman-go/internal/http"
	"github.com/forgeops/foreman-go/pkg/foreman"
)

const apiVersion = "v2"

// Client implements the foreman.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	baseURL    string
	resolver   *resolver

	// Resource clients
	architectures     foreman.ResourceClient
	commonParameters  foreman.ResourceClient
	computeAttributes foreman.ComputeAttributesClient
	computeProfiles   foreman.ResourceClient
	computeResources  foreman.ResourceClient
	configTemplates   foreman.ResourceClient
	domains           foreman.ResourceClient
	environments      foreman.ResourceClient
	hostgroups        foreman.ResourceClient
	hosts             foreman.HostsClient
	locations         foreman.ResourceClient
	media             foreman.ResourceClient
	operatingSystems  foreman.ResourceClient
	organizations     foreman.ResourceClient
	partitionTables   foreman.ResourceClient
	smartProxies      foreman.ResourceClient
	subnets           foreman.ResourceClient
}

var _ foreman.Client = (*Client)(nil)

// New creates a new Foreman API client from the config.
func New(config *foreman.Config) (*Client, error) {
	if config == nil {
		return nil, foreman.ErrConfigRequired
	}

	if config.Hostname == "" {
		return nil, foreman.ErrHostnameRequired
	}

	port := config.Port
	if port == 0 {
		port = 443
	}

	baseURL := fmt.Sprintf("https://%s:%d/api/%s", config.Hostname, port, apiVersion)
	httpClient := internalhttp.NewClient(baseURL, config.Username, config.Password, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		resolver:   &resolver{httpClient: httpClient, cache: config.Cache},
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *foreman.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.SkipTLSVerify {
		opts = append(opts, internalhttp.WithSkipTLSVerify(true))
	}

	if config.Timeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.Timeout))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	return opts
}

// BaseURL returns the composed API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// initializeResourceClients initializes all resource-specific clients
// from the kind table.
func (c *Client) initializeResourceClients() {
	c.architectures = c.forKind("architectures")
	c.commonParameters = c.forKind("common_parameters")
	c.computeProfiles = c.forKind("compute_profiles")
	c.computeResources = c.forKind("compute_resources")
	c.configTemplates = c.forKind("config_templates")
	c.domains = c.forKind("domains")
	c.environments = c.forKind("environments")
	c.hostgroups = c.forKind("hostgroups")
	c.hosts = newHostsClient(c.forKind("hosts"))
	c.locations = c.forKind("locations")
	c.media = c.forKind("media")
	c.operatingSystems = c.forKind("operatingsystems")
	c.organizations = c.forKind("organizations")
	c.partitionTables = c.forKind("ptables")
	c.smartProxies = c.forKind("smart_proxies")
	c.subnets = c.forKind("subnets")
	c.computeAttributes = newComputeAttributesClient(
		c.forKind("compute_attributes"),
		c.computeResources,
		c.computeProfiles,
	)
}

func (c *Client) forKind(name string) *resourceClient {
	return newResourceClient(c.httpClient, c.resolver, kinds[name])
}

// Resource implements foreman.Client.Resource. Unmodeled kinds default
// to resolve-then-get routing.
func (c *Client) Resource(resourceType, wrapper string) foreman.ResourceClient {
	if k, ok := kinds[resourceType]; ok {
		return newResourceClient(c.httpClient, c.resolver, k)
	}

	return newResourceClient(c.httpClient, c.resolver, kind{path: resourceType, wrapper: wrapper})
}

// Resource client accessors

// Architectures implements foreman.Client.Architectures.
func (c *Client) Architectures() foreman.ResourceClient {
	return c.architectures
}

// CommonParameters implements foreman.Client.CommonParameters.
func (c *Client) CommonParameters() foreman.ResourceClient {
	return c.commonParameters
}

// ComputeAttributes implements foreman.Client.ComputeAttributes.
func (c *Client) ComputeAttributes() foreman.ComputeAttributesClient {
	return c.computeAttributes
}

// ComputeProfiles implements foreman.Client.ComputeProfiles.
func (c *Client) ComputeProfiles() foreman.ResourceClient {
	return c.computeProfiles
}

// ComputeResources implements foreman.Client.ComputeResources.
func (c *Client) ComputeResources() foreman.ResourceClient {
	return c.computeResources
}

// ConfigTemplates implements foreman.Client.ConfigTemplates.
func (c *Client) ConfigTemplates() foreman.ResourceClient {
	return c.configTemplates
}

// Domains implements foreman.Client.Domains.
func (c *Client) Domains() foreman.ResourceClient {
	return c.domains
}

// Environments implements foreman.Client.Environments.
func (c *Client) Environments() foreman.ResourceClient {
	return c.environments
}

// Hostgroups implements foreman.Client.Hostgroups.
func (c *Client) Hostgroups() foreman.ResourceClient {
	return c.hostgroups
}

// Hosts implements foreman.Client.Hosts.
func (c *Client) Hosts() foreman.HostsClient {
	return c.hosts
}

// Locations implements foreman.Client.Locations.
func (c *Client) Locations() foreman.ResourceClient {
	return c.locations
}

// Media implements foreman.Client.Media.
func (c *Client) Media() foreman.ResourceClient {
	return c.media
}

// OperatingSystems implements foreman.Client.OperatingSystems.
func (c *Client) OperatingSystems() foreman.ResourceClient {
	return c.operatingSystems
}

// Organizations implements foreman.Client.Organizations.
func (c *Client) Organizations() foreman.ResourceClient {
	return c.organizations
}

// PartitionTables implements foreman.Client.PartitionTables.
func (c *Client) PartitionTables() foreman.ResourceClient {
	return c.partitionTables
}

// SmartProxies implements foreman.Client.SmartProxies.
func (c *Client) SmartProxies() foreman.ResourceClient {
	return c.smartProxies
}

// Subnets implements foreman.Client.Subnets.
func (c *Client) Subnets() foreman.ResourceClient {
	return c.subnets
}
