package storage

import (
	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// Stage selects which filesystems a Provisioner declares.
type Stage int

const (
	// Primary declares filesystems that precede the cluster.
	Primary Stage = iota
	// Secondary declares filesystems flagged after_cluster, then the volume descriptor.
	Secondary
)

func (s Stage) String() string {
	if s == Secondary {
		return "secondary"
	}
	return "primary"
}

// Provisioner declares the filesystems of one stage.
type Provisioner struct {
	stage Stage
}

// NewProvisioner creates a storage provisioner for stage.
func NewProvisioner(stage Stage) *Provisioner {
	return &Provisioner{stage: stage}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "storage/" + p.stage.String()
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	for _, fs := range ctx.Config.FileShare.FileSystems {
		if !p.owns(fs) {
			continue
		}
		if err := p.ProvisionFileSystem(ctx, fs); err != nil {
			return err
		}
	}

	if p.stage == Secondary {
		return p.ProvisionVolume(ctx)
	}
	return nil
}

func (p *Provisioner) owns(fs config.FileSystemConfig) bool {
	return fs.AfterCluster == (p.stage == Secondary)
}
