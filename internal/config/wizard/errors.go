package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errStackNameRequired  = errors.New("stack name is required")
	errStackNameInvalid   = errors.New("stack name must start with a letter and contain only letters, digits and hyphens")
	errAccountInvalid     = errors.New("account must be a 12 digit account ID")
	errRegionInvalid      = errors.New("region must look like eu-central-1")
	errCIDRRequired       = errors.New("CIDR is required")
	errCIDRInvalid        = errors.New("invalid IPv4 CIDR format (expected: x.x.x.x/xx)")
	errClusterNameInvalid = errors.New("cluster name may contain only letters, digits, hyphens and underscores")
	errBucketInvalid      = errors.New("bucket name must be 3-63 lowercase letters, digits, dots or hyphens")
)
