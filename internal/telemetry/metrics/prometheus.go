package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry scraped on /metrics.
// versionInfo is exposed as a label of liftstats_version_info so deploys show up on dashboards.
func SetupPrometheus(versionInfo string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	if versionInfo == "" {
		versionInfo = "unknown"
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "liftstats_version_info",
			Help:        "Always 1, labeled with the running commit.",
			ConstLabels: prometheus.Labels{"version": versionInfo},
		}, func() float64 { return 1 }),
	)
	registry.MustRegister(extraCollectors...)

	return registry
}
