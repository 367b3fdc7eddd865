package storage

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsecs"

	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// ProvisionVolume builds the task volume descriptor for the configured
// filesystem. The descriptor is a plain value; nothing in the stack consumes
// it until a task definition mounts it.
func (p *Provisioner) ProvisionVolume(ctx *provisioning.Context) error {
	id := ctx.Config.FileShare.VolumeFileSystem
	if id == "" {
		return nil
	}

	fs, ok := ctx.State.FileSystem(id)
	if !ok {
		return fmt.Errorf("volume descriptor references filesystem %s which has not been declared", id)
	}

	ctx.State.Volume = &awsecs.EfsVolumeConfiguration{
		FileSystemId: fs.FileSystemId(),
	}
	ctx.Observer.Printf("[%s] Bound volume descriptor to filesystem %s", p.Name(), id)
	return nil
}
