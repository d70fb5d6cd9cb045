package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion counters, exposed on /metrics. These replace the tracking
// events the quiz frontend used to fire.
var (
	quizCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fragmatch_quiz_completed_total",
		Help: "Number of completed quizzes (successful /recommend calls).",
	})

	leadsCapturedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fragmatch_leads_captured_total",
		Help: "Number of leads captured via /leads.",
	})
)
