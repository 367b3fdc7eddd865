package storage

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsefs"
	"github.com/aws/jsii-runtime-go"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// LifecyclePolicy maps a configured transition window to the library enum.
func LifecyclePolicy(l config.Lifecycle) (awsefs.LifecyclePolicy, error) {
	switch l {
	case config.LifecycleAfter7Days:
		return awsefs.LifecyclePolicy_AFTER_7_DAYS, nil
	case config.LifecycleAfter14Days:
		return awsefs.LifecyclePolicy_AFTER_14_DAYS, nil
	case config.LifecycleAfter30Days:
		return awsefs.LifecyclePolicy_AFTER_30_DAYS, nil
	case config.LifecycleAfter60Days:
		return awsefs.LifecyclePolicy_AFTER_60_DAYS, nil
	case config.LifecycleAfter90Days:
		return awsefs.LifecyclePolicy_AFTER_90_DAYS, nil
	default:
		return "", fmt.Errorf("unknown lifecycle policy %q", l)
	}
}

// ProvisionFileSystem declares one shared filesystem in the network scope.
func (p *Provisioner) ProvisionFileSystem(ctx *provisioning.Context, fs config.FileSystemConfig) error {
	scope, err := ctx.NetworkScope()
	if err != nil {
		return err
	}

	policy, err := LifecyclePolicy(fs.Lifecycle)
	if err != nil {
		return fmt.Errorf("filesystem %s: %w", fs.ID, err)
	}

	props := &awsefs.FileSystemProps{
		Vpc:             ctx.State.Network,
		LifecyclePolicy: policy,
	}
	if fs.Name != "" {
		props.FileSystemName = jsii.String(fs.Name)
	}
	if fs.Firewalled {
		if ctx.State.FileShareSecurityGroup == nil {
			return fmt.Errorf("filesystem %s is firewalled but no file-share security group was declared", fs.ID)
		}
		props.SecurityGroup = ctx.State.FileShareSecurityGroup
	}

	ctx.Observer.Printf("[%s] Declaring filesystem %s (lifecycle %s, firewalled %t)...", p.Name(), fs.ID, fs.Lifecycle, fs.Firewalled)

	resource := awsefs.NewFileSystem(scope, jsii.String(fs.ID), props)
	ctx.State.FileSystems = append(ctx.State.FileSystems, provisioning.FileSystem{
		Config:   fs,
		Resource: resource,
	})
	provisioning.LogResourceDeclared(ctx.Observer, p.Name(), "AWS::EFS::FileSystem", fs.ID)
	return nil
}
