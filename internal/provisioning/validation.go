package provisioning

import (
	"fmt"
)

// ValidationWarning is a configuration finding that does not block synthesis.
type ValidationWarning struct {
	Field   string
	Message string
}

// ValidationPhase implements the Phase interface for pre-flight validation.
// Hard errors come from config.Validate; the phase adds warnings about
// resources that are declared but not wired to anything.
type ValidationPhase struct{}

// NewValidationPhase creates a new validation phase.
func NewValidationPhase() *ValidationPhase {
	return &ValidationPhase{}
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	if err := ctx.Config.Validate(); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	for _, w := range Warnings(ctx) {
		LogValidationWarning(ctx.Observer, w.Field, w.Message)
	}
	return nil
}

// Warnings returns the non-fatal findings for the context's configuration.
func Warnings(ctx *Context) []ValidationWarning {
	cfg := ctx.Config
	var warnings []ValidationWarning

	for i, fs := range cfg.FileShare.FileSystems {
		if !fs.Firewalled && len(cfg.FileShare.Ingress) > 0 {
			warnings = append(warnings, ValidationWarning{
				Field:   fmt.Sprintf("file_share.file_systems[%d].firewalled", i),
				Message: fmt.Sprintf("filesystem %s does not use the file-share security group and gets a default group without NFS ingress", fs.ID),
			})
		}
	}

	if cfg.Role.ID != "" {
		warnings = append(warnings, ValidationWarning{
			Field:   "role",
			Message: fmt.Sprintf("role %s is not attached to any compute resource", cfg.Role.ID),
		})
	}

	if cfg.FileShare.VolumeFileSystem != "" {
		warnings = append(warnings, ValidationWarning{
			Field:   "file_share.volume_file_system",
			Message: fmt.Sprintf("volume descriptor for %s is not consumed by any task definition", cfg.FileShare.VolumeFileSystem),
		})
	}

	return warnings
}
