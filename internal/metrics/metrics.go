// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shrimpsizemoose/stipendium/internal/models"
	"github.com/shrimpsizemoose/stipendium/internal/tracker"
)

var (
	ChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_changes_total",
			Help: "Total number of applied tracker changes",
		},
		[]string{"entity", "kind"},
	)

	RejectedCreatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_rejected_creates_total",
			Help: "Total number of creates declined for missing fields",
		},
		[]string{"entity"},
	)

	Scholarships = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_scholarships",
			Help: "Number of scholarships currently offered",
		},
	)

	ApplicationsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tracker_applications",
			Help: "Number of applications per status",
		},
		[]string{"status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)

// Track keeps the counters and gauges in step with t and returns a func that
// stops tracking. The gauges are process-wide and each refresh overwrites
// them, so with several trackers tracked at once they show whichever tracker
// changed last. A process is expected to track a single tracker.
func Track(t *tracker.Tracker) (stop func()) {
	refresh(t)

	observe := func(event tracker.Event) {
		ChangesTotal.WithLabelValues(string(event.Entity), string(event.Kind)).Inc()
		refresh(t)
	}

	cancelScholarships := t.Scholarships.Subscribe(observe)
	cancelApplications := t.Applications.Subscribe(observe)

	return func() {
		cancelScholarships()
		cancelApplications()
	}
}

func refresh(t *tracker.Tracker) {
	Scholarships.Set(float64(len(t.Scholarships.List())))

	counts := make(map[models.Status]int, len(models.Statuses))
	for _, app := range t.Applications.List() {
		counts[app.Status]++
	}
	for _, status := range models.Statuses {
		ApplicationsByStatus.WithLabelValues(string(status)).Set(float64(counts[status]))
	}
}
