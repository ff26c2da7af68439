package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the upload pipeline's prometheus counters. A nil *Metrics
// is valid and counts nothing, which keeps tests free of registry setup.
type Metrics struct {
	filesStored  prometheus.Counter
	conversions  prometheus.Counter
	itemFailures *prometheus.CounterVec
}

// NewMetrics registers the pipeline counters on the given registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		filesStored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phonedrop_files_stored_total",
			Help: "Total number of files written to the destination directory.",
		}),
		conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phonedrop_heic_conversions_total",
			Help: "Total number of HEIC/HEIF inputs re-encoded as JPEG.",
		}),
		itemFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "phonedrop_item_failures_total",
			Help: "Total number of upload items that failed, by failure code.",
		}, []string{"code"}),
	}

	for _, c := range []prometheus.Collector{m.filesStored, m.conversions, m.itemFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) fileStored() {
	if m != nil {
		m.filesStored.Inc()
	}
}

func (m *Metrics) converted() {
	if m != nil {
		m.conversions.Inc()
	}
}

func (m *Metrics) itemFailed(code string) {
	if m != nil {
		m.itemFailures.WithLabelValues(code).Inc()
	}
}
