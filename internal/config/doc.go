// Package config defines the configuration model for the General base stack.
//
// The [Config] struct is the canonical description of every resource the
// stack declares: the network and its subnet groups, the runtime log group,
// the file-share firewall, the shared filesystems, the instance role and the
// container cluster. [Default] returns the reference layout; a cloudbase.yaml
// file loaded with [Load] overlays it field by field.
package config
