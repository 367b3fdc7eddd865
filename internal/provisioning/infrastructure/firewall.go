package infrastructure

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/jsii-runtime-go"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// ProvisionFirewall declares the file-share security group with its ingress
// rules. The group is stored in state only after every rule is applied.
func (p *Provisioner) ProvisionFirewall(ctx *provisioning.Context) error {
	fsh := ctx.Config.FileShare
	if fsh.SecurityGroupID == "" {
		ctx.Observer.Printf("[%s] No file-share security group configured, skipping", phase)
		return nil
	}

	scope, err := ctx.NetworkScope()
	if err != nil {
		return err
	}

	ctx.Observer.Printf("[%s] Declaring security group %s with %d ingress rule(s)...", phase, fsh.SecurityGroupID, len(fsh.Ingress))

	sg := awsec2.NewSecurityGroup(scope, jsii.String(fsh.SecurityGroupID), &awsec2.SecurityGroupProps{
		Vpc: ctx.State.Network,
	})
	provisioning.LogResourceDeclared(ctx.Observer, phase, "AWS::EC2::SecurityGroup", fsh.SecurityGroupID)

	for _, rule := range fsh.Ingress {
		if err := applyIngress(sg, rule); err != nil {
			return err
		}
		provisioning.LogResourceUpdated(ctx.Observer, phase, "AWS::EC2::SecurityGroup", fsh.SecurityGroupID,
			fmt.Sprintf("ingress tcp/%d from %s", rule.Port, rule.CIDR))
	}

	ctx.State.FileShareSecurityGroup = sg
	return nil
}

// applyIngress adds one TCP ingress rule to sg.
func applyIngress(sg awsec2.SecurityGroup, rule config.IngressRule) error {
	if rule.Port < 1 || rule.Port > 65535 {
		return fmt.Errorf("ingress rule for %s: invalid port %d", rule.CIDR, rule.Port)
	}

	var description *string
	if rule.Description != "" {
		description = jsii.String(rule.Description)
	}

	sg.AddIngressRule(awsec2.Peer_Ipv4(jsii.String(rule.CIDR)), awsec2.Port_Tcp(jsii.Number(float64(rule.Port))), description, nil)
	return nil
}
