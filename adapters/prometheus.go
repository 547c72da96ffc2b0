// File: adapters/prometheus.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Prometheus bridge: exposes the numeric slice of api.Control.Stats() as
// gauges labeled by flattened stat key, resolved at scrape time.

package adapters

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-atom/api"
)

// Ensure compile-time interface compliance.
var _ prometheus.Collector = (*StatsCollector)(nil)

// StatsCollector adapts a Control into a prometheus.Collector. Nested maps
// in the stats output flatten into dot-joined keys; non-numeric leaves are
// skipped.
type StatsCollector struct {
	ctrl api.Control
	desc *prometheus.Desc
}

// NewStatsCollector builds a collector publishing under
// <namespace>_hub_stat{key="..."}.
func NewStatsCollector(ctrl api.Control, namespace string) *StatsCollector {
	return &StatsCollector{
		ctrl: ctrl,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "hub", "stat"),
			"Flattened numeric hub runtime stat.",
			[]string{"key"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (s *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- s.desc
}

// Collect implements prometheus.Collector. Stats are read fresh on every
// scrape; no background refresh goroutine is involved.
func (s *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	flat := make(map[string]float64)
	flattenStats("", s.ctrl.Stats(), flat)
	for key, val := range flat {
		ch <- prometheus.MustNewConstMetric(s.desc, prometheus.GaugeValue, val, key)
	}
}

func flattenStats(prefix string, in map[string]any, out map[string]float64) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]any:
			flattenStats(key, x, out)
		case bool:
			if x {
				out[key] = 1
			} else {
				out[key] = 0
			}
		case int:
			out[key] = float64(x)
		case int32:
			out[key] = float64(x)
		case int64:
			out[key] = float64(x)
		case uint32:
			out[key] = float64(x)
		case uint64:
			out[key] = float64(x)
		case float32:
			out[key] = float64(x)
		case float64:
			out[key] = x
		}
	}
}
