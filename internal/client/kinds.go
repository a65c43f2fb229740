package client

// kind describes how one resource family maps onto the API: its
// collection path segment, the wrapper key create payloads are nested
// under, and how Get is routed.
type kind struct {
	path    string
	wrapper string
	// getViaSearch routes Get through the collection search and
	// returns the collapsed match directly, skipping the follow-up
	// GET on the single-resource endpoint.
	getViaSearch bool
}

// kinds is the full table of modeled resource families. Everything a
// resource-specific accessor does is derived from this table; adding a
// kind is one line here plus an accessor.
var kinds = map[string]kind{
	"architectures":      {path: "architectures", wrapper: "architecture"},
	"common_parameters":  {path: "common_parameters", wrapper: "common_parameter"},
	"compute_attributes": {path: "compute_attributes", wrapper: "compute_attribute"},
	"compute_profiles":   {path: "compute_profiles", wrapper: "compute_profile"},
	"compute_resources":  {path: "compute_resources", wrapper: "compute_resource"},
	"config_templates":   {path: "config_templates", wrapper: "config_template"},
	"domains":            {path: "domains", wrapper: "domain", getViaSearch: true},
	"environments":       {path: "environments", wrapper: "environment", getViaSearch: true},
	"hostgroups":         {path: "hostgroups", wrapper: "hostgroup", getViaSearch: true},
	"hosts":              {path: "hosts", wrapper: "host"},
	"locations":          {path: "locations", wrapper: "location", getViaSearch: true},
	"media":              {path: "media", wrapper: "medium", getViaSearch: true},
	"operatingsystems":   {path: "operatingsystems", wrapper: "operatingsystem", getViaSearch: true},
	"organizations":      {path: "organizations", wrapper: "organization", getViaSearch: true},
	"ptables":            {path: "ptables", wrapper: "ptable", getViaSearch: true},
	"smart_proxies":      {path: "smart_proxies", wrapper: "smart_proxy", getViaSearch: true},
	"subnets":            {path: "subnets", wrapper: "subnet", getViaSearch: true},
}
