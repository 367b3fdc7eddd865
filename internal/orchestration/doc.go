// Package orchestration provides high-level workflow coordination for stack
// synthesis.
//
// This package creates the CDK application and stack, then delegates the
// declaration of resources to the provisioners in the internal/provisioning
// subpackages. It defines the execution order and hands the populated
// construct state back to callers.
//
// # Workflow
//
// The Synthesizer executes the following phases in order:
//  1. Validation - configuration checks and wiring warnings
//  2. Infrastructure - network, log group, file-share security group
//  3. Storage (primary) - filesystems declared before the cluster
//  4. Compute - instance role and container cluster
//  5. Storage (secondary) - remaining filesystems and the volume descriptor
//
// The cloud assembly is then synthesized to the output directory.
//
// # Usage
//
//	s := orchestration.NewSynthesizer(cfg, "cdk.out")
//	result, err := s.Synthesize(ctx)
//	fmt.Println(result.Dir)
package orchestration
