package infrastructure

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/jsii-runtime-go"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// ProvisionNetwork declares the virtual network with its subnet groups.
func (p *Provisioner) ProvisionNetwork(ctx *provisioning.Context) error {
	netCfg := ctx.Config.Network
	ctx.Observer.Printf("[%s] Declaring network %s with %d subnet group(s)...", phase, netCfg.ID, len(netCfg.Subnets))

	subnets, err := subnetConfiguration(netCfg.Subnets)
	if err != nil {
		return err
	}

	props := &awsec2.VpcProps{
		SubnetConfiguration: &subnets,
	}
	if netCfg.MaxAZs > 0 {
		props.MaxAzs = jsii.Number(float64(netCfg.MaxAZs))
	}

	ctx.State.Network = awsec2.NewVpc(ctx.Stack, jsii.String(netCfg.ID), props)
	provisioning.LogResourceDeclared(ctx.Observer, phase, "AWS::EC2::VPC", netCfg.ID)
	return nil
}

// subnetConfiguration converts subnet groups to the library's layout.
func subnetConfiguration(groups []config.SubnetConfig) ([]*awsec2.SubnetConfiguration, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("network requires at least one subnet group")
	}

	out := make([]*awsec2.SubnetConfiguration, 0, len(groups))
	for _, g := range groups {
		st, err := SubnetType(g.Type)
		if err != nil {
			return nil, fmt.Errorf("subnet group %s: %w", g.Name, err)
		}

		sc := &awsec2.SubnetConfiguration{
			Name:       jsii.String(g.Name),
			SubnetType: st,
		}
		if g.CIDRMask > 0 {
			sc.CidrMask = jsii.Number(float64(g.CIDRMask))
		}
		out = append(out, sc)
	}
	return out, nil
}

// SubnetType maps a configured visibility class to the library enum.
func SubnetType(t config.SubnetType) (awsec2.SubnetType, error) {
	switch t {
	case config.SubnetPublic:
		return awsec2.SubnetType_PUBLIC, nil
	case config.SubnetPrivate:
		return awsec2.SubnetType_PRIVATE_WITH_EGRESS, nil
	case config.SubnetIsolated:
		return awsec2.SubnetType_PRIVATE_ISOLATED, nil
	default:
		return "", fmt.Errorf("unknown subnet type %q", t)
	}
}
