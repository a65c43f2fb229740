package client

import (
	"context"
	"fmt"

	"github.com/forgeops/foreman-go/pkg/foreman"
)

// computeAttributesClient implements foreman.ComputeAttributesClient.
// Reads compose two name lookups (compute resource, compute profile)
// and filter the attribute collection embedded in the compute resource;
// writes go through the compute_attributes endpoints with the parent
// ids as top-level fields.
type computeAttributesClient struct {
	attributes       *resourceClient
	computeResources foreman.ResourceClient
	computeProfiles  foreman.ResourceClient
}

func newComputeAttributesClient(attributes *resourceClient, computeResources, computeProfiles foreman.ResourceClient) *computeAttributesClient {
	return &computeAttributesClient{
		attributes:       attributes,
		computeResources: computeResources,
		computeProfiles:  computeProfiles,
	}
}

// ForComputeResource implements foreman.ComputeAttributesClient.ForComputeResource.
func (c *computeAttributesClient) ForComputeResource(ctx context.Context, computeResource string) ([]foreman.Resource, error) {
	resource, err := c.computeResources.Get(ctx, foreman.ByName(computeResource))
	if err != nil {
		return nil, fmt.Errorf("getting compute resource %q: %w", computeResource, err)
	}

	if resource == nil {
		return nil, nil
	}

	embedded, ok := resource["compute_attributes"].([]interface{})
	if !ok {
		return nil, nil
	}

	attributes := make([]foreman.Resource, 0, len(embedded))

	for _, item := range embedded {
		if attr, ok := item.(map[string]interface{}); ok {
			attributes = append(attributes, foreman.Resource(attr))
		}
	}

	return attributes, nil
}

// ForProfile implements foreman.ComputeAttributesClient.ForProfile.
func (c *computeAttributesClient) ForProfile(ctx context.Context, computeResource, profile string) ([]foreman.Resource, error) {
	attributes, err := c.ForComputeResource(ctx, computeResource)
	if err != nil {
		return nil, err
	}

	profileResource, err := c.computeProfiles.Get(ctx, foreman.ByName(profile))
	if err != nil {
		return nil, fmt.Errorf("getting compute profile %q: %w", profile, err)
	}

	if profileResource == nil {
		return nil, nil
	}

	profileID, ok := profileResource.ID()
	if !ok {
		return nil, nil
	}

	var matched []foreman.Resource

	for _, attr := range attributes {
		if id, ok := attr.Int("compute_profile_id"); ok && id == profileID {
			matched = append(matched, attr)
		}
	}

	return matched, nil
}

// Create implements foreman.ComputeAttributesClient.Create. The parent
// ids bypass the payload wrapper: the API expects them beside the
// wrapped compute_attribute object.
func (c *computeAttributesClient) Create(ctx context.Context, computeResourceID, profileID int, vmAttrs foreman.Payload) (foreman.Resource, error) {
	extra := foreman.Payload{
		"compute_resource_id": computeResourceID,
		"compute_profile_id":  profileID,
	}

	return c.attributes.CreateWith(ctx, foreman.Payload{"vm_attrs": vmAttrs}, extra)
}

// Update implements foreman.ComputeAttributesClient.Update.
func (c *computeAttributesClient) Update(ctx context.Context, id int, vmAttrs foreman.Payload) (foreman.Resource, error) {
	return c.attributes.Update(ctx, id, foreman.Payload{"vm_attrs": vmAttrs})
}
