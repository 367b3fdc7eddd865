package config

// Reference values for the General base stack.
const (
	DefaultStackName        = "General"
	DefaultNetworkID        = "GeneralVpc"
	DefaultPublicSubnetName = "Public"
	DefaultLogGroupID       = "GeneralFargateLogGroup"
	DefaultSecurityGroupID  = "efsSg"
	DefaultStorageID        = "GeneralStorage"
	DefaultStorageName      = "General"
	DefaultVolumeStorageID  = "Efs"
	DefaultRoleID           = "SsmRole"
	DefaultClusterID        = "GeneralCluster"

	// NFSPort is the TCP port of the NFS protocol.
	NFSPort = 2049

	// DefaultIngressCIDR is the private range allowed to mount filesystems.
	DefaultIngressCIDR = "10.0.0.0/8"

	// EC2ServicePrincipal is the service identity of compute instances.
	EC2ServicePrincipal = "ec2.amazonaws.com"

	// SSMManagedInstanceCorePolicy grants Systems Manager remote management.
	SSMManagedInstanceCorePolicy = "AmazonSSMManagedInstanceCore"
)

// Default returns the reference configuration of the General base stack.
func Default() *Config {
	return &Config{
		Stack: StackConfig{
			Name:                  DefaultStackName,
			TerminationProtection: true,
		},
		Network: NetworkConfig{
			ID: DefaultNetworkID,
			Subnets: []SubnetConfig{
				{Name: DefaultPublicSubnetName, Type: SubnetPublic},
			},
		},
		Logging: LoggingConfig{
			ID:           DefaultLogGroupID,
			LogGroupName: DefaultLogGroupID,
			Retention:    RetentionFiveMonths,
		},
		FileShare: FileShareConfig{
			SecurityGroupID: DefaultSecurityGroupID,
			Ingress: []IngressRule{
				{CIDR: DefaultIngressCIDR, Port: NFSPort},
			},
			FileSystems: []FileSystemConfig{
				{
					ID:         DefaultStorageID,
					Name:       DefaultStorageName,
					Lifecycle:  LifecycleAfter7Days,
					Firewalled: true,
				},
				{
					ID:           DefaultVolumeStorageID,
					Lifecycle:    LifecycleAfter7Days,
					AfterCluster: true,
				},
			},
			VolumeFileSystem: DefaultVolumeStorageID,
		},
		Role: RoleConfig{
			ID:              DefaultRoleID,
			AssumedBy:       EC2ServicePrincipal,
			ManagedPolicies: []string{SSMManagedInstanceCorePolicy},
		},
		Cluster: ClusterConfig{
			ID:                       DefaultClusterID,
			Name:                     DefaultClusterID,
			FargateCapacityProviders: true,
		},
	}
}
