package provisioning

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsecs"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsefs"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"

	"github.com/abcbcafe/cloud-base/internal/config"
)

// State holds the construct handles declared by provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that reference earlier resources.
type State struct {
	// Infrastructure results (populated by infrastructure provisioner)
	Network                awsec2.Vpc
	LogGroup               awslogs.LogGroup
	FileShareSecurityGroup awsec2.SecurityGroup

	// Storage results (populated by storage provisioners)
	FileSystems []FileSystem
	Volume      *awsecs.EfsVolumeConfiguration

	// Compute results (populated by compute provisioner)
	Role    awsiam.Role
	Cluster awsecs.Cluster
}

// FileSystem pairs a declared filesystem with its configuration.
type FileSystem struct {
	Config   config.FileSystemConfig
	Resource awsefs.FileSystem
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// FileSystem returns the declared filesystem with the given construct ID.
func (s *State) FileSystem(id string) (awsefs.FileSystem, bool) {
	for _, fs := range s.FileSystems {
		if fs.Config.ID == id {
			return fs.Resource, true
		}
	}
	return nil, false
}
