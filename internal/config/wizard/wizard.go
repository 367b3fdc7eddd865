package wizard

import (
	"context"
	"fmt"
)

// WizardResult holds all the answers from the interactive wizard.
type WizardResult struct {
	// Stack identity
	StackName             string
	Description           string
	TerminationProtection bool

	// Environment (both empty for an environment-agnostic stack)
	Account string
	Region  string

	// Logging
	Retention string

	// File share
	IngressCIDR string

	// Cluster
	ClusterName string
	Fargate     bool

	// Publishing (optional)
	Bucket string
	Prefix string
}

// RunWizard runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := newDefaultResult()

	if err := runStackGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}

	if err := runEnvironmentGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := runStorageGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	if err := runClusterGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}

	if err := runPublishGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}

	return result, nil
}
