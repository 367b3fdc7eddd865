package compute

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/jsii-runtime-go"

	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// ProvisionRole declares the instance role trusted by the configured service
// principal, with the configured AWS managed policies attached.
func (p *Provisioner) ProvisionRole(ctx *provisioning.Context) error {
	scope, err := ctx.NetworkScope()
	if err != nil {
		return err
	}

	rc := ctx.Config.Role
	if rc.AssumedBy == "" {
		return fmt.Errorf("role %s: trust principal is required", rc.ID)
	}

	ctx.Observer.Printf("[%s] Declaring role %s assumable by %s...", phase, rc.ID, rc.AssumedBy)

	policies := make([]awsiam.IManagedPolicy, 0, len(rc.ManagedPolicies))
	for _, name := range rc.ManagedPolicies {
		policies = append(policies, awsiam.ManagedPolicy_FromAwsManagedPolicyName(jsii.String(name)))
	}

	role := awsiam.NewRole(scope, jsii.String(rc.ID), &awsiam.RoleProps{
		AssumedBy:       awsiam.NewServicePrincipal(jsii.String(rc.AssumedBy), nil),
		ManagedPolicies: &policies,
	})

	ctx.State.Role = role
	provisioning.LogResourceDeclared(ctx.Observer, phase, "AWS::IAM::Role", rc.ID)
	return nil
}
