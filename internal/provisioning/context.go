package provisioning

import (
	"context"
	"errors"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/logging"
)

// ErrNetworkMissing is returned by phases that need the network before the
// infrastructure phase has declared it.
var ErrNetworkMissing = errors.New("network has not been declared")

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	Stack    awscdk.Stack
	State    *State
	Observer Observer
}

// NewContext creates a new provisioning context for stack. The observer
// logs through the logger carried by ctx.
func NewContext(ctx context.Context, cfg *config.Config, stack awscdk.Stack) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Stack:    stack,
		State:    NewState(),
		Observer: NewConsoleObserver(logging.FromContext(ctx)),
	}
}

// NetworkScope returns the construct scope that network-attached resources
// are declared in. Every resource after the network lives under it.
func (c *Context) NetworkScope() (constructs.Construct, error) {
	if c.State.Network == nil {
		return nil, ErrNetworkMissing
	}
	return c.State.Network, nil
}
