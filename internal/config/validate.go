package config

import (
	"errors"
	"fmt"
	"net"
	"regexp"
)

var (
	// stackNameRegex follows the CloudFormation stack name rules.
	stackNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]{0,127}$`)

	// clusterNameRegex follows the ECS cluster name rules.
	clusterNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,255}$`)

	accountRegex = regexp.MustCompile(`^[0-9]{12}$`)

	regionRegex = regexp.MustCompile(`^[a-z]{2}(-gov)?-[a-z]+-[0-9]$`)

	bucketRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

	servicePrincipalRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]*\.amazonaws\.com(\.cn)?$`)
)

// ValidStackName reports whether s is a legal CloudFormation stack name.
func ValidStackName(s string) bool { return stackNameRegex.MatchString(s) }

// ValidAccount reports whether s is a 12 digit AWS account ID.
func ValidAccount(s string) bool { return accountRegex.MatchString(s) }

// ValidRegion reports whether s looks like an AWS region code.
func ValidRegion(s string) bool { return regionRegex.MatchString(s) }

// ValidClusterName reports whether s is a legal ECS cluster name.
func ValidClusterName(s string) bool { return clusterNameRegex.MatchString(s) }

// ValidBucket reports whether s is a legal S3 bucket name.
func ValidBucket(s string) bool { return bucketRegex.MatchString(s) }

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	errs = append(errs, c.validateStack()...)
	errs = append(errs, c.validateNetwork()...)
	errs = append(errs, c.validateLogging()...)
	errs = append(errs, c.validateFileShare()...)
	errs = append(errs, c.validateRole()...)
	errs = append(errs, c.validateCluster()...)
	errs = append(errs, c.validateConstructIDs()...)

	return errors.Join(errs...)
}

func (c *Config) validateStack() []error {
	var errs []error

	if c.Stack.Name == "" {
		errs = append(errs, errors.New("stack.name is required"))
	} else if !ValidStackName(c.Stack.Name) {
		errs = append(errs, fmt.Errorf("stack.name %q must start with a letter and contain only letters, digits and hyphens", c.Stack.Name))
	}

	if c.Stack.Account != "" && !ValidAccount(c.Stack.Account) {
		errs = append(errs, fmt.Errorf("stack.account %q must be a 12 digit account ID", c.Stack.Account))
	}

	return errs
}

func (c *Config) validateNetwork() []error {
	var errs []error

	if c.Network.ID == "" {
		errs = append(errs, errors.New("network.id is required"))
	}
	if c.Network.MaxAZs < 0 {
		errs = append(errs, errors.New("network.max_azs must not be negative"))
	}
	if len(c.Network.Subnets) == 0 {
		errs = append(errs, errors.New("network.subnets must declare at least one subnet group"))
	}

	seen := make(map[string]bool)
	for i, sn := range c.Network.Subnets {
		if sn.Name == "" {
			errs = append(errs, fmt.Errorf("network.subnets[%d].name is required", i))
		} else if seen[sn.Name] {
			errs = append(errs, fmt.Errorf("network.subnets[%d].name %q is duplicated", i, sn.Name))
		}
		seen[sn.Name] = true

		if !sn.Type.IsValid() {
			errs = append(errs, fmt.Errorf("network.subnets[%d].type must be one of: %v", i, ValidSubnetTypes()))
		}
		if sn.CIDRMask != 0 && (sn.CIDRMask < 16 || sn.CIDRMask > 28) {
			errs = append(errs, fmt.Errorf("network.subnets[%d].cidr_mask must be between 16 and 28", i))
		}
	}

	return errs
}

func (c *Config) validateLogging() []error {
	var errs []error

	if c.Logging.ID == "" {
		errs = append(errs, errors.New("logging.id is required"))
	}
	if len(c.Logging.LogGroupName) > 512 {
		errs = append(errs, errors.New("logging.log_group_name must be at most 512 characters"))
	}
	if !c.Logging.Retention.IsValid() {
		errs = append(errs, fmt.Errorf("logging.retention must be one of: %v", ValidRetentions()))
	}

	return errs
}

func (c *Config) validateFileShare() []error {
	var errs []error
	fsh := c.FileShare

	if fsh.SecurityGroupID == "" && (len(fsh.Ingress) > 0 || c.HasFirewalledFileSystem()) {
		errs = append(errs, errors.New("file_share.security_group_id is required when ingress rules or firewalled filesystems are declared"))
	}

	for i, rule := range fsh.Ingress {
		ip, _, err := net.ParseCIDR(rule.CIDR)
		if err != nil {
			errs = append(errs, fmt.Errorf("file_share.ingress[%d].cidr: %w", i, err))
		} else if ip.To4() == nil {
			errs = append(errs, fmt.Errorf("file_share.ingress[%d].cidr %q must be an IPv4 range", i, rule.CIDR))
		}
		if rule.Port < 1 || rule.Port > 65535 {
			errs = append(errs, fmt.Errorf("file_share.ingress[%d].port %d must be a valid TCP port", i, rule.Port))
		}
	}

	seen := make(map[string]bool)
	for i, fs := range fsh.FileSystems {
		if fs.ID == "" {
			errs = append(errs, fmt.Errorf("file_share.file_systems[%d].id is required", i))
		} else if seen[fs.ID] {
			errs = append(errs, fmt.Errorf("file_share.file_systems[%d].id %q is duplicated", i, fs.ID))
		}
		seen[fs.ID] = true

		if len(fs.Name) > 256 {
			errs = append(errs, fmt.Errorf("file_share.file_systems[%d].name must be at most 256 characters", i))
		}
		if !fs.Lifecycle.IsValid() {
			errs = append(errs, fmt.Errorf("file_share.file_systems[%d].lifecycle must be one of: %v", i, ValidLifecycles()))
		}
	}

	if fsh.VolumeFileSystem != "" && !seen[fsh.VolumeFileSystem] {
		errs = append(errs, fmt.Errorf("file_share.volume_file_system %q does not reference a declared filesystem", fsh.VolumeFileSystem))
	}

	return errs
}

func (c *Config) validateRole() []error {
	var errs []error

	if c.Role.ID == "" {
		errs = append(errs, errors.New("role.id is required"))
	}
	if !servicePrincipalRegex.MatchString(c.Role.AssumedBy) {
		errs = append(errs, fmt.Errorf("role.assumed_by %q must be a service principal such as %s", c.Role.AssumedBy, EC2ServicePrincipal))
	}
	for i, p := range c.Role.ManagedPolicies {
		if p == "" {
			errs = append(errs, fmt.Errorf("role.managed_policies[%d] must not be empty", i))
		}
	}

	return errs
}

func (c *Config) validateCluster() []error {
	var errs []error

	if c.Cluster.ID == "" {
		errs = append(errs, errors.New("cluster.id is required"))
	}
	if c.Cluster.Name != "" && !ValidClusterName(c.Cluster.Name) {
		errs = append(errs, fmt.Errorf("cluster.name %q may contain only letters, digits, hyphens and underscores", c.Cluster.Name))
	}

	return errs
}

// validateConstructIDs ensures resources declared in the network scope do
// not share a construct ID.
func (c *Config) validateConstructIDs() []error {
	var errs []error
	owners := make(map[string]string)

	claim := func(id, owner string) {
		if id == "" {
			return
		}
		if prev, ok := owners[id]; ok {
			errs = append(errs, fmt.Errorf("construct id %q is used by both %s and %s", id, prev, owner))
			return
		}
		owners[id] = owner
	}

	claim(c.Logging.ID, "logging")
	claim(c.FileShare.SecurityGroupID, "file_share.security_group_id")
	for i, fs := range c.FileShare.FileSystems {
		claim(fs.ID, fmt.Sprintf("file_share.file_systems[%d]", i))
	}
	claim(c.Role.ID, "role")
	claim(c.Cluster.ID, "cluster")

	return errs
}
