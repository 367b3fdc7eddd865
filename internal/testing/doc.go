// Package testing provides test utilities, builders, and fixtures for unit tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - ConfigBuilder: Fluent builder for creating test configurations
//   - NewStackContext: A provisioning context bound to a fresh app and stack
//   - RecordingObserver: Observer that keeps every event for assertions
//
// Usage:
//
//	cfg := testing.NewConfigBuilder().
//	    WithStackName("Test").
//	    WithoutVolume().
//	    Build()
//
//	ctx := testing.NewStackContext(cfg)
//	err := infrastructure.NewProvisioner().Provision(ctx)
package testing
