// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors of one augmentation run, registered on a
// private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Samples
	SamplesProcessed prometheus.Counter
	SampleFailures   prometheus.Counter
	SampleDuration   prometheus.Histogram

	// Variants, labelled by kind
	VariantsWritten *prometheus.CounterVec
	VariantFailures *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		SamplesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "wakeaug_samples_total",
			Help: "Total number of positive samples processed",
		}),
		SampleFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "wakeaug_sample_failures_total",
			Help: "Total number of positive samples that could not be augmented",
		}),
		SampleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wakeaug_sample_duration_seconds",
			Help:    "Time spent augmenting one positive sample",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		}),

		VariantsWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wakeaug_variants_written_total",
			Help: "Total number of augmented variants written",
		}, []string{"kind"}),
		VariantFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wakeaug_variant_failures_total",
			Help: "Total number of variants that failed",
		}, []string{"kind"}),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveSample records one finished sample.
func (m *Metrics) ObserveSample(elapsed time.Duration, err error) {
	m.SamplesProcessed.Inc()
	m.SampleDuration.Observe(elapsed.Seconds())
	if err != nil {
		m.SampleFailures.Inc()
	}
}

// ObserveVariant records one variant of the given kind.
func (m *Metrics) ObserveVariant(kind string, err error) {
	if err != nil {
		m.VariantFailures.WithLabelValues(kind).Inc()
		return
	}
	m.VariantsWritten.WithLabelValues(kind).Inc()
}

// WriteTextfile writes every collected value to path in the text
// exposition format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}

	return nil
}
