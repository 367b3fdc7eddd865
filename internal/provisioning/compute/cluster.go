package compute

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsecs"
	"github.com/aws/jsii-runtime-go"

	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// ProvisionCluster declares the container cluster in the network.
func (p *Provisioner) ProvisionCluster(ctx *provisioning.Context) error {
	scope, err := ctx.NetworkScope()
	if err != nil {
		return err
	}

	cc := ctx.Config.Cluster
	props := &awsecs.ClusterProps{
		Vpc:                            ctx.State.Network,
		EnableFargateCapacityProviders: jsii.Bool(cc.FargateCapacityProviders),
	}
	if cc.Name != "" {
		props.ClusterName = jsii.String(cc.Name)
	}

	ctx.Observer.Printf("[%s] Declaring cluster %s (fargate capacity providers %t)...", phase, cc.ID, cc.FargateCapacityProviders)

	ctx.State.Cluster = awsecs.NewCluster(scope, jsii.String(cc.ID), props)
	provisioning.LogResourceDeclared(ctx.Observer, phase, "AWS::ECS::Cluster", cc.ID)
	return nil
}
