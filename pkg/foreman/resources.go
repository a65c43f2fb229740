package foreman

import "strconv"

// Resource is a decoded Foreman resource. The API returns resources as
// free-form JSON objects; typed getters cover the fields the client
// itself needs.
type Resource map[string]interface{}

// ID returns the resource's numeric id, if present.
func (r Resource) ID() (int, bool) {
	return r.Int("id")
}

// Name returns the resource's name field, or "".
func (r Resource) Name() string {
	return r.String("name")
}

// String returns the named field as a string, or "" when absent or of
// another type.
func (r Resource) String(key string) string {
	value, _ := r[key].(string)

	return value
}

// Int returns the named field as an int. JSON numbers decode as
// float64; string-encoded ids are accepted as well since the API is
// not consistent about them.
func (r Resource) Int(key string) (int, bool) {
	switch value := r[key].(type) {
	case float64:
		return int(value), true
	case int:
		return value, true
	case string:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}

		return parsed, true
	default:
		return 0, false
	}
}

// Payload is a set of resource fields submitted on create or update.
// Create wraps it under the resource kind's wrapper key before
// submission.
type Payload map[string]interface{}

// SearchResult holds the matches of a search in server order.
//
// A search yielding exactly one match collapses to that single resource
// through Single. This mirrors the API convention long-standing callers
// rely on: one match is "the" resource, anything else is a collection.
type SearchResult struct {
	resources []Resource
}

// NewSearchResult wraps a slice of matches.
func NewSearchResult(resources []Resource) *SearchResult {
	return &SearchResult{resources: resources}
}

// Single returns the sole match if the search yielded exactly one.
func (r *SearchResult) Single() (Resource, bool) {
	if len(r.resources) == 1 {
		return r.resources[0], true
	}

	return nil, false
}

// All returns every match.
func (r *SearchResult) All() []Resource {
	return r.resources
}

// Len returns the number of matches.
func (r *SearchResult) Len() int {
	return len(r.resources)
}
