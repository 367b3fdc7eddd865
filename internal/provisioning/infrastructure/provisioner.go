package infrastructure

import (
	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

const phase = "infrastructure"

// Provisioner handles infrastructure declaration (network, log group, firewall).
type Provisioner struct{}

// NewProvisioner creates a new infrastructure provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	// 1. Network
	if err := p.ProvisionNetwork(ctx); err != nil {
		return err
	}

	// 2. Log group
	if err := p.ProvisionLogGroup(ctx); err != nil {
		return err
	}

	// 3. File-share firewall
	return p.ProvisionFirewall(ctx)
}
