package command

import (
	"context"
	"errors"

	"github.com/jbeshir/private-content-feed/internal/registry"
)

// CheckAvailability asks the registry whether it is accepting requests.
type CheckAvailability struct {
	Registry *registry.Client
}

func NewCheckAvailability(registryClient *registry.Client) *CheckAvailability {
	return &CheckAvailability{Registry: registryClient}
}

// Execute fails unless the registry reports itself available.
func (c *CheckAvailability) Execute(ctx context.Context, _ Empty) (Empty, error) {
	ok, err := c.Registry.IsAvailable(ctx)
	if err != nil {
		return Empty{}, err
	}
	if !ok {
		return Empty{}, errors.New("registry reported unavailable")
	}
	return Empty{}, nil
}
