// Package storage declares the shared filesystems of the base stack and the
// task volume descriptor that binds one of them.
//
// Filesystems are split between two pipeline stages so that resources keep
// their declaration order relative to the compute phase: the primary stage
// runs before the cluster and the secondary stage after it.
package storage
