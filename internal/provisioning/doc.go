// Package provisioning provides shared types, interfaces, and the phase
// pipeline used to declare the base stack.
//
// # Subpackages
//
//   - infrastructure/: Network, log group, file-share security group
//   - storage/: Shared filesystems and the task volume descriptor
//   - compute/: Instance role and container cluster
//
// # Core Types
//
// Context carries configuration, the target stack, state, and the observer.
// Phase defines a declaration step with Name() and Provision() methods.
// State accumulates the construct handles produced by each phase.
package provisioning
