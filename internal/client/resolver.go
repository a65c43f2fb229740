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

// resolver turns identifiers into concrete resource ids. A numeric id
// passes through without a network call; lookup fields are searched and
// must collapse to exactly one match. Zero and multiple matches are
// both reported as not-found since the API gives no way to tell a
// caller which one happened.
type resolver struct {
	httpClient *internalhttp.Client
	cache      foreman.Cache
}

func (r *resolver) resolve(ctx context.Context, resourceType string, id foreman.Identifier) (int, bool, error) {
	if resourceID, ok := id.ID(); ok {
		return resourceID, true, nil
	}

	query := id.Query()
	if query == nil || query.Len() == 0 {
		return 0, false, nil
	}

	search, err := query.Build()
	if err != nil {
		return 0, false, fmt.Errorf("building search query: %w", err)
	}

	cacheKey := "resolve:" + resourceType + ":" + search

	if r.cache != nil {
		if value, err := r.cache.Get(ctx, cacheKey); err == nil {
			if cached, err := strconv.Atoi(string(value)); err == nil {
				return cached, true, nil
			}
		}
	}

	values := url.Values{}
	values.Set("search", search)

	resp, err := r.httpClient.Get(ctx, resourcePath(resourceType, "", "", ""), values)
	if err != nil {
		return 0, false, fmt.Errorf("searching %s: %w", resourceType, err)
	}

	var result listResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return 0, false, fmt.Errorf("parsing %s search response: %w", resourceType, err)
	}

	if len(result.Results) != 1 {
		return 0, false, nil
	}

	resourceID, ok := result.Results[0].ID()
	if !ok {
		return 0, false, nil
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey, []byte(strconv.Itoa(resourceID)))
	}

	return resourceID, true, nil
}
