// Package metrics counts record and device outcomes on a private
// Prometheus registry. The CLI has no scrape endpoint; the registry is
// dumped in text exposition format for a node_exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rockside"

// Outcome label values.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
	OutcomeAbsent    = "absent"
	OutcomeCorrupt   = "corrupt"
	OutcomeDenied    = "denied"
	OutcomeCancelled = "cancelled"
)

type Recorder struct {
	registry *prometheus.Registry

	saves    *prometheus.CounterVec
	loads    *prometheus.CounterVec
	location *prometheus.CounterVec
	photos   *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_saves_total",
			Help:      "Record save attempts by record and outcome.",
		}, []string{"record", "outcome"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_loads_total",
			Help:      "Record loads by record and outcome.",
		}, []string{"record", "outcome"}),
		location: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_requests_total",
			Help:      "Location acquisitions by outcome.",
		}, []string{"outcome"}),
		photos: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photo_picks_total",
			Help:      "Photo picker invocations by outcome.",
		}, []string{"outcome"}),
	}
	r.registry.MustRegister(r.saves, r.loads, r.location, r.photos)
	return r
}

func (r *Recorder) ObserveSave(record, outcome string) {
	r.saves.WithLabelValues(record, outcome).Inc()
}

func (r *Recorder) ObserveLoad(record, outcome string) {
	r.loads.WithLabelValues(record, outcome).Inc()
}

func (r *Recorder) ObserveLocation(outcome string) {
	r.location.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObservePhoto(outcome string) {
	r.photos.WithLabelValues(outcome).Inc()
}

// Gatherer exposes the registry, mostly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
