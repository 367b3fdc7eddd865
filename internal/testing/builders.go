package testing

import (
	"github.com/abcbcafe/cloud-base/internal/config"
)

// ConfigBuilder provides a fluent interface for constructing test configs.
// Each method returns a new builder (immutable) for chaining.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfigBuilder creates a new ConfigBuilder seeded with the reference configuration.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: *config.Default()}
}

// WithStackName sets the stack name.
func (b *ConfigBuilder) WithStackName(name string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Stack.Name = name
	return nb
}

// WithEnvironment pins the stack to an account and region.
func (b *ConfigBuilder) WithEnvironment(account, region string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Stack.Account = account
	nb.cfg.Stack.Region = region
	return nb
}

// WithTag adds a stack tag.
func (b *ConfigBuilder) WithTag(key, value string) *ConfigBuilder {
	nb := b.clone()
	if nb.cfg.Stack.Tags == nil {
		nb.cfg.Stack.Tags = make(map[string]string)
	}
	nb.cfg.Stack.Tags[key] = value
	return nb
}

// WithSubnet appends a subnet group.
func (b *ConfigBuilder) WithSubnet(name string, t config.SubnetType) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Network.Subnets = append(nb.cfg.Network.Subnets, config.SubnetConfig{Name: name, Type: t})
	return nb
}

// WithMaxAZs limits the number of availability zones.
func (b *ConfigBuilder) WithMaxAZs(n int) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Network.MaxAZs = n
	return nb
}

// WithRetention sets the log retention window.
func (b *ConfigBuilder) WithRetention(r config.Retention) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Logging.Retention = r
	return nb
}

// WithIngress appends an ingress rule to the file-share security group.
func (b *ConfigBuilder) WithIngress(cidr string, port int) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.FileShare.Ingress = append(nb.cfg.FileShare.Ingress, config.IngressRule{CIDR: cidr, Port: port})
	return nb
}

// WithFileSystem appends a filesystem.
func (b *ConfigBuilder) WithFileSystem(fs config.FileSystemConfig) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.FileShare.FileSystems = append(nb.cfg.FileShare.FileSystems, fs)
	return nb
}

// WithoutVolume disables the task volume descriptor.
func (b *ConfigBuilder) WithoutVolume() *ConfigBuilder {
	nb := b.clone()
	nb.cfg.FileShare.VolumeFileSystem = ""
	return nb
}

// WithFargate toggles Fargate capacity providers.
func (b *ConfigBuilder) WithFargate(enabled bool) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Cluster.FargateCapacityProviders = enabled
	return nb
}

// WithManagedPolicies replaces the role's managed policies.
func (b *ConfigBuilder) WithManagedPolicies(names ...string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Role.ManagedPolicies = append([]string(nil), names...)
	return nb
}

// Build returns a copy of the built configuration.
func (b *ConfigBuilder) Build() *config.Config {
	out := b.clone().cfg
	return &out
}

// clone deep-copies the slices and maps of the configuration.
func (b *ConfigBuilder) clone() *ConfigBuilder {
	c := b.cfg

	if c.Stack.Tags != nil {
		tags := make(map[string]string, len(c.Stack.Tags))
		for k, v := range c.Stack.Tags {
			tags[k] = v
		}
		c.Stack.Tags = tags
	}
	c.Network.Subnets = append([]config.SubnetConfig(nil), c.Network.Subnets...)
	c.FileShare.Ingress = append([]config.IngressRule(nil), c.FileShare.Ingress...)
	c.FileShare.FileSystems = append([]config.FileSystemConfig(nil), c.FileShare.FileSystems...)
	c.Role.ManagedPolicies = append([]string(nil), c.Role.ManagedPolicies...)

	return &ConfigBuilder{cfg: c}
}
