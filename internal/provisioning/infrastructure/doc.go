// Package infrastructure declares the network-level resources of the base
// stack: the virtual network and its subnet groups, the runtime log group,
// and the security group guarding NFS access to the shared filesystems.
package infrastructure
