package client

import (
	"context"
	"fmt"

	"github.com/forgeops/foreman-go/pkg/foreman"
)

// Power actions accepted by the hosts power endpoint.
const (
	powerActionStart  = "start"
	powerActionStop   = "stop"
	powerActionReboot = "reboot"
	powerActionState  = "state"
)

// hostsClient adds power control on top of the generic host operations.
type hostsClient struct {
	*resourceClient
}

func newHostsClient(resources *resourceClient) *hostsClient {
	return &hostsClient{resourceClient: resources}
}

// PowerOn implements foreman.HostsClient.PowerOn.
func (c *hostsClient) PowerOn(ctx context.Context, hostID int) (foreman.Resource, error) {
	return c.power(ctx, hostID, powerActionStart)
}

// PowerOff implements foreman.HostsClient.PowerOff.
func (c *hostsClient) PowerOff(ctx context.Context, hostID int) (foreman.Resource, error) {
	return c.power(ctx, hostID, powerActionStop)
}

// Reboot implements foreman.HostsClient.Reboot.
func (c *hostsClient) Reboot(ctx context.Context, hostID int) (foreman.Resource, error) {
	return c.power(ctx, hostID, powerActionReboot)
}

// PowerState implements foreman.HostsClient.PowerState. The power
// endpoint reports state through the same PUT as the state-changing
// actions.
func (c *hostsClient) PowerState(ctx context.Context, hostID int) (foreman.Resource, error) {
	return c.power(ctx, hostID, powerActionState)
}

func (c *hostsClient) power(ctx context.Context, hostID int, action string) (foreman.Resource, error) {
	payload := map[string]interface{}{
		"power_action": action,
		"host":         map[string]interface{}{},
	}

	resource, err := c.put(ctx, hostID, "power", payload)
	if err != nil {
		return nil, fmt.Errorf("host %d power %s: %w", hostID, action, err)
	}

	return resource, nil
}
