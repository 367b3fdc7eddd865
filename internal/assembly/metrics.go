package assembly

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteMetrics writes the summary and synthesis duration to path in the
// Prometheus textfile format.
func WriteMetrics(path string, s Summary, duration time.Duration) error {
	resources := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "cloudbase",
			Subsystem: "stack",
			Name:      "resources",
			Help:      "Number of resources in the synthesized stack by type",
		},
		[]string{"stack", "type"},
	)
	synthDuration := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "cloudbase",
			Name:      "synth_duration_seconds",
			Help:      "Duration of stack declaration and synthesis in seconds",
		},
		[]string{"stack"},
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(resources, synthDuration)

	for _, rc := range s.Resources {
		resources.WithLabelValues(s.Stack, rc.Type).Set(float64(rc.Count))
	}
	synthDuration.WithLabelValues(s.Stack).Set(duration.Seconds())

	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
