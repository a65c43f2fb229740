package client

// resourcePath composes the hierarchical API path for a resource:
// /resource_type[/resource_id[/component[/component_id]]]. Trailing
// parts are appended only while every preceding part is present; a
// component without a resource id, or a component id without a
// component, is dropped. Any resource type string is accepted so
// unmodeled kinds stay reachable.
func resourcePath(resourceType, resourceID, component, componentID string) string {
	path := "/" + resourceType

	if resourceID == "" {
		return path
	}

	path += "/" + resourceID

	if component == "" {
		return path
	}

	path += "/" + component

	if componentID == "" {
		return path
	}

	return path + "/" + componentID
}
