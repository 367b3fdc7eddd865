package compute

import (
	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

const phase = "compute"

// Provisioner handles compute declaration (instance role, cluster).
type Provisioner struct{}

// NewProvisioner creates a new compute provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	if err := p.ProvisionRole(ctx); err != nil {
		return err
	}

	return p.ProvisionCluster(ctx)
}
