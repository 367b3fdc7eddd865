package config

// Config is the complete declaration of the base stack.
type Config struct {
	// Stack describes the deployable unit every resource lives in.
	Stack StackConfig `yaml:"stack"`

	// Network is the isolated virtual network and its subnet groups.
	Network NetworkConfig `yaml:"network"`

	// Logging is the runtime log group used by serverless tasks.
	Logging LoggingConfig `yaml:"logging"`

	// FileShare holds the NFS firewall and the shared filesystems.
	FileShare FileShareConfig `yaml:"file_share"`

	// Role is the identity assumable by compute instances.
	Role RoleConfig `yaml:"role"`

	// Cluster is the container cluster bound to the network.
	Cluster ClusterConfig `yaml:"cluster"`

	// Output controls where the cloud assembly is written.
	Output OutputConfig `yaml:"output,omitempty"`

	// Publish configures uploading the cloud assembly to S3.
	Publish PublishConfig `yaml:"publish,omitempty"`
}

// StackConfig describes the deployable unit.
type StackConfig struct {
	Name                  string            `yaml:"name"`
	TerminationProtection bool              `yaml:"termination_protection"`
	Account               string            `yaml:"account,omitempty"`
	Region                string            `yaml:"region,omitempty"`
	Description           string            `yaml:"description,omitempty"`
	Tags                  map[string]string `yaml:"tags,omitempty"`
}

// IsEnvironmentAgnostic reports whether the stack is synthesized without a
// concrete account and region.
func (s StackConfig) IsEnvironmentAgnostic() bool {
	return s.Account == "" && s.Region == ""
}

// NetworkConfig describes the virtual network.
type NetworkConfig struct {
	ID      string         `yaml:"id"`
	MaxAZs  int            `yaml:"max_azs,omitempty"`
	Subnets []SubnetConfig `yaml:"subnets"`
}

// SubnetConfig is one subnet group, replicated in every availability zone.
type SubnetConfig struct {
	Name     string     `yaml:"name"`
	Type     SubnetType `yaml:"type"`
	CIDRMask int        `yaml:"cidr_mask,omitempty"`
}

// LoggingConfig describes the runtime log group.
type LoggingConfig struct {
	ID           string    `yaml:"id"`
	LogGroupName string    `yaml:"log_group_name"`
	Retention    Retention `yaml:"retention"`
}

// FileShareConfig groups the file-share firewall and the filesystems.
type FileShareConfig struct {
	// SecurityGroupID is the construct ID of the NFS security group.
	SecurityGroupID string `yaml:"security_group_id"`

	// Ingress lists the inbound rules of the NFS security group.
	Ingress []IngressRule `yaml:"ingress"`

	// FileSystems lists the shared filesystems in declaration order.
	FileSystems []FileSystemConfig `yaml:"file_systems"`

	// VolumeFileSystem is the ID of the filesystem bound into the task
	// volume descriptor. Empty disables the descriptor.
	VolumeFileSystem string `yaml:"volume_file_system,omitempty"`
}

// IngressRule permits inbound TCP traffic from an IPv4 range.
type IngressRule struct {
	CIDR        string `yaml:"cidr"`
	Port        int    `yaml:"port"`
	Description string `yaml:"description,omitempty"`
}

// FileSystemConfig describes one shared filesystem.
type FileSystemConfig struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name,omitempty"`
	Lifecycle Lifecycle `yaml:"lifecycle"`

	// Firewalled attaches the file-share security group. Without it the
	// library creates a default group for the filesystem.
	Firewalled bool `yaml:"firewalled"`

	// AfterCluster defers the filesystem until the cluster is declared.
	AfterCluster bool `yaml:"after_cluster,omitempty"`
}

// RoleConfig describes the instance role.
type RoleConfig struct {
	ID              string   `yaml:"id"`
	AssumedBy       string   `yaml:"assumed_by"`
	ManagedPolicies []string `yaml:"managed_policies"`
}

// ClusterConfig describes the container cluster.
type ClusterConfig struct {
	ID                       string `yaml:"id"`
	Name                     string `yaml:"name"`
	FargateCapacityProviders bool   `yaml:"fargate_capacity_providers"`
}

// OutputConfig controls the synthesis output.
type OutputConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// PublishConfig describes the S3 destination for a synthesized assembly.
type PublishConfig struct {
	Bucket   string `yaml:"bucket,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Region   string `yaml:"region,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// FileSystem returns the filesystem with the given construct ID.
func (c *Config) FileSystem(id string) (FileSystemConfig, bool) {
	for _, fs := range c.FileShare.FileSystems {
		if fs.ID == id {
			return fs, true
		}
	}
	return FileSystemConfig{}, false
}

// HasFirewalledFileSystem returns true if any filesystem uses the file-share
// security group.
func (c *Config) HasFirewalledFileSystem() bool {
	for _, fs := range c.FileShare.FileSystems {
		if fs.Firewalled {
			return true
		}
	}
	return false
}
