package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Availability exposes counters/histograms for slot computations and
// booking webhook ingestion.
type Availability struct {
	computations *prometheus.CounterVec
	slots        prometheus.Histogram
	latency      prometheus.Histogram
	webhooks     *prometheus.CounterVec
}

func NewAvailability(reg prometheus.Registerer) *Availability {
	m := &Availability{
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "availability",
			Name:      "computations_total",
			Help:      "Total availability computations by outcome",
		}, []string{"outcome"}),
		slots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "barber",
			Subsystem: "availability",
			Name:      "slots_returned",
			Help:      "Number of slots returned per computation",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "barber",
			Subsystem: "availability",
			Name:      "compute_seconds",
			Help:      "Latency of availability computations including the booking snapshot load",
			Buckets:   prometheus.DefBuckets,
		}),
		webhooks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "webhook",
			Name:      "bookings_total",
			Help:      "Total booking webhook deliveries by result",
		}, []string{"result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.computations, m.slots, m.latency, m.webhooks)
	return m
}

func (m *Availability) ObserveComputation(outcome string, slots int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(outcome).Inc()
	m.slots.Observe(float64(slots))
	m.latency.Observe(elapsed.Seconds())
}

func (m *Availability) ObserveWebhook(result string) {
	if m == nil {
		return
	}
	m.webhooks.WithLabelValues(result).Inc()
}
