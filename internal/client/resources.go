package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	internalhttp "github.com/forgeops/foreman-go/internal/http"
	"github.com/forgeops/foreman-go/pkg/foreman"
)

// listResponse is the envelope of collection endpoints.
type listResponse struct {
	Results []foreman.Resource `json:"results"`
}

// resourceClient implements foreman.ResourceClient for one resource
// kind. All kind-specific behavior comes from the kind table entry.
type resourceClient struct {
	httpClient   *internalhttp.Client
	resolver     *resolver
	path         string
	wrapper      string
	getViaSearch bool
}

func newResourceClient(httpClient *internalhttp.Client, res *resolver, k kind) *resourceClient {
	return &resourceClient{
		httpClient:   httpClient,
		resolver:     res,
		path:         k.path,
		wrapper:      k.wrapper,
		getViaSearch: k.getViaSearch,
	}
}

// List implements foreman.ResourceClient.List.
func (c *resourceClient) List(ctx context.Context) ([]foreman.Resource, error) {
	resp, err := c.httpClient.Get(ctx, resourcePath(c.path, "", "", ""), nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.path, err)
	}

	var result listResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", c.path, err)
	}

	return result.Results, nil
}

// Get implements foreman.ResourceClient.Get. Kinds flagged
// getViaSearch return the collapsed search match directly; all others
// resolve the identifier to an id and fetch the single-resource
// endpoint. Both paths yield (nil, nil) when the identifier does not
// resolve to exactly one resource.
func (c *resourceClient) Get(ctx context.Context, id foreman.Identifier) (foreman.Resource, error) {
	if c.getViaSearch {
		query := id.Query()
		if resourceID, ok := id.ID(); ok {
			query = foreman.NewSearchQuery().Eq("id", resourceID)
		}

		result, err := c.Search(ctx, query)
		if err != nil {
			return nil, err
		}

		resource, ok := result.Single()
		if !ok {
			return nil, nil
		}

		return resource, nil
	}

	resourceID, ok, err := c.resolver.resolve(ctx, c.path, id)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	return c.getByID(ctx, resourceID)
}

func (c *resourceClient) getByID(ctx context.Context, id int) (foreman.Resource, error) {
	resp, err := c.httpClient.Get(ctx, resourcePath(c.path, strconv.Itoa(id), "", ""), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s/%d: %w", c.path, id, err)
	}

	var resource foreman.Resource
	if err := json.Unmarshal(resp.Body, &resource); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.path, err)
	}

	return resource, nil
}

// Create implements foreman.ResourceClient.Create.
func (c *resourceClient) Create(ctx context.Context, payload foreman.Payload) (foreman.Resource, error) {
	return c.CreateWith(ctx, payload, nil)
}

// CreateWith implements foreman.ResourceClient.CreateWith. The payload
// is nested under the kind's wrapper key; extra fields travel beside
// the wrapper at the top level.
func (c *resourceClient) CreateWith(ctx context.Context, payload foreman.Payload, extra foreman.Payload) (foreman.Resource, error) {
	body := make(map[string]interface{}, len(extra)+1)
	for key, value := range extra {
		body[key] = value
	}

	body[c.wrapper] = payload

	resp, err := c.httpClient.Post(ctx, resourcePath(c.path, "", "", ""), body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.wrapper, err)
	}

	var resource foreman.Resource
	if err := json.Unmarshal(resp.Body, &resource); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.wrapper, err)
	}

	return resource, nil
}

// Update implements foreman.ResourceClient.Update. Update payloads are
// submitted unwrapped.
func (c *resourceClient) Update(ctx context.Context, id int, payload foreman.Payload) (foreman.Resource, error) {
	return c.put(ctx, id, "", payload)
}

// put issues a PUT against the single-resource endpoint, optionally
// scoped to a sub-component.
func (c *resourceClient) put(ctx context.Context, id int, component string, payload interface{}) (foreman.Resource, error) {
	resp, err := c.httpClient.Put(ctx, resourcePath(c.path, strconv.Itoa(id), component, ""), payload)
	if err != nil {
		return nil, fmt.Errorf("updating %s/%d: %w", c.path, id, err)
	}

	var resource foreman.Resource
	if err := json.Unmarshal(resp.Body, &resource); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.path, err)
	}

	return resource, nil
}

// Delete implements foreman.ResourceClient.Delete. The identifier must
// carry a numeric id; destructive calls never resolve by name.
func (c *resourceClient) Delete(ctx context.Context, id foreman.Identifier) (foreman.Resource, error) {
	resourceID, ok := id.ID()
	if !ok {
		return nil, fmt.Errorf("deleting %s: %w", c.path, foreman.ErrIdentifierRequiresID)
	}

	resp, err := c.httpClient.Delete(ctx, resourcePath(c.path, strconv.Itoa(resourceID), "", ""))
	if err != nil {
		return nil, fmt.Errorf("deleting %s/%d: %w", c.path, resourceID, err)
	}

	var resource foreman.Resource
	if err := json.Unmarshal(resp.Body, &resource); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.path, err)
	}

	return resource, nil
}

// Search implements foreman.ResourceClient.Search. A nil or empty query
// matches everything.
func (c *resourceClient) Search(ctx context.Context, query *foreman.SearchQuery) (*foreman.SearchResult, error) {
	values := url.Values{}

	if query != nil {
		search, err := query.Build()
		if err != nil {
			return nil, fmt.Errorf("building search query: %w", err)
		}

		if search != "" {
			values.Set("search", search)
		}
	}

	resp, err := c.httpClient.Get(ctx, resourcePath(c.path, "", "", ""), values)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", c.path, err)
	}

	var result listResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing %s search response: %w", c.path, err)
	}

	return foreman.NewSearchResult(result.Results), nil
}
