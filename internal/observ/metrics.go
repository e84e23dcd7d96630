package observ

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Outcome classifies how a file left the code base.
type Outcome string

const (
	// OutcomeParsed: the file was parsed and cataloged.
	OutcomeParsed Outcome = "parsed"
	// OutcomeFailed: scanning, filtering, parsing or reading failed.
	OutcomeFailed Outcome = "failed"
	// OutcomeDuplicate: the file parsed but its logical name was taken.
	OutcomeDuplicate Outcome = "duplicate"
)

// Metrics holds the counters of batch parsing. Each instance owns its
// registry so that several code bases (and tests) do not collide.
type Metrics struct {
	registry *prometheus.Registry

	files         *prometheus.CounterVec
	fileSeconds   prometheus.Histogram
	units         prometheus.Gauge
	projects      prometheus.Gauge
	batches       prometheus.Counter
	batchSeconds  prometheus.Histogram
	watcherEvents prometheus.Counter
}

// NewMetrics registers the parser metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		files: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dgrok_files_total",
			Help: "Files handed to the code base, by outcome.",
		}, []string{"outcome"}),
		fileSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "dgrok_file_parse_seconds",
			Help:    "Time spent scanning, filtering and parsing one file.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		units: f.NewGauge(prometheus.GaugeOpts{
			Name: "dgrok_units",
			Help: "Units currently in the catalog.",
		}),
		projects: f.NewGauge(prometheus.GaugeOpts{
			Name: "dgrok_projects",
			Help: "Programs, libraries and packages currently in the catalog.",
		}),
		batches: f.NewCounter(prometheus.CounterOpts{
			Name: "dgrok_batches_total",
			Help: "Parallel parse batches run.",
		}),
		batchSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "dgrok_batch_seconds",
			Help:    "Wall time of a parallel parse batch.",
			Buckets: prometheus.DefBuckets,
		}),
		watcherEvents: f.NewCounter(prometheus.CounterOpts{
			Name: "dgrok_watcher_events_total",
			Help: "File system events that triggered a re-parse.",
		}),
	}
}

// ObserveFile counts one file. A zero duration is not put into the histogram.
func (m *Metrics) ObserveFile(outcome Outcome, d time.Duration) {
	if m == nil {
		return
	}
	m.files.WithLabelValues(string(outcome)).Inc()
	if d > 0 {
		m.fileSeconds.Observe(d.Seconds())
	}
}

// SetCatalog publishes the catalog sizes.
func (m *Metrics) SetCatalog(units, projects int) {
	if m == nil {
		return
	}
	m.units.Set(float64(units))
	m.projects.Set(float64(projects))
}

// ObserveBatch counts a finished batch.
func (m *Metrics) ObserveBatch(d time.Duration) {
	if m == nil {
		return
	}
	m.batches.Inc()
	m.batchSeconds.Observe(d.Seconds())
}

// WatcherEvent counts a re-parse trigger.
func (m *Metrics) WatcherEvent() {
	if m == nil {
		return
	}
	m.watcherEvents.Inc()
}

// FileCount returns the counter value for outcome.
func (m *Metrics) FileCount(outcome Outcome) float64 {
	if m == nil {
		return 0
	}
	return counterValue(m.files.WithLabelValues(string(outcome)))
}

// WriteTextfile dumps the registry in the text exposition format, the form
// node_exporter's textfile collector picks up.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func counterValue(c prometheus.Counter) float64 {
	var pb dto.Metric
	if err := c.Write(&pb); err != nil {
		return 0
	}
	return pb.GetCounter().GetValue()
}
