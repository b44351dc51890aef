package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "roster_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	})
	unregisterCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "roster_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	})
	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster_service",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Number of rejected roster mutations grouped by reason.",
	}, []string{"reason"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "roster_service",
		Subsystem: "registry",
		Name:      "participants",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})
)

// Rejection reasons used as counter labels.
const (
	ReasonNotFound        = "activity_not_found"
	ReasonAlreadySignedUp = "already_signed_up"
	ReasonNotRegistered   = "not_registered"
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, participantsGauge)
}

// RecordSignup counts a successful signup and updates the activity's gauge.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.Inc()
	setRosterSize(activity, rosterSize)
}

// RecordUnregister counts a successful unregistration and updates the gauge.
func RecordUnregister(activity string, rosterSize int) {
	unregisterCounter.Inc()
	setRosterSize(activity, rosterSize)
}

// RecordRejection counts a rejected mutation by reason.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}

// SeedRosterSizes initialises the participants gauge from the seed snapshot
// so scrapes before the first mutation still report every activity.
func SeedRosterSizes(sizes map[string]int) {
	for activity, size := range sizes {
		setRosterSize(activity, size)
	}
}

func setRosterSize(activity string, size int) {
	if size < 0 {
		return
	}
	participantsGauge.WithLabelValues(activity).Set(float64(size))
}
