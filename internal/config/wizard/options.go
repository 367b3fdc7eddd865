package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/abcbcafe/cloud-base/internal/config"
)

// newDefaultResult pre-fills the answers with the reference configuration.
func newDefaultResult() *WizardResult {
	def := config.Default()
	return &WizardResult{
		StackName:             def.Stack.Name,
		TerminationProtection: def.Stack.TerminationProtection,
		Retention:             string(def.Logging.Retention),
		IngressCIDR:           def.FileShare.Ingress[0].CIDR,
		ClusterName:           def.Cluster.Name,
		Fargate:               def.Cluster.FargateCapacityProviders,
	}
}

// RetentionsToOptions converts the retention enumeration to huh options.
func RetentionsToOptions() []huh.Option[string] {
	retentions := config.ValidRetentions()
	opts := make([]huh.Option[string], 0, len(retentions))
	for _, r := range retentions {
		opts = append(opts, huh.NewOption(retentionLabel(r), string(r)))
	}
	return opts
}

func retentionLabel(r config.Retention) string {
	if r.Days() == 0 {
		return fmt.Sprintf("%s (never expire)", r)
	}
	return fmt.Sprintf("%s (%d days)", r, r.Days())
}
