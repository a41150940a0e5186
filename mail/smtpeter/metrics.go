package smtpeter

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smtpeter_send_duration_seconds",
			Help:    "Duration of SMTPeter send calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	sendTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smtpeter_send_total",
			Help: "Number of SMTPeter send calls by outcome",
		},
		[]string{"outcome"},
	)
)

// outcomeTransportError labels calls that failed before an answer was read.
const outcomeTransportError = "transport_error"

func init() {
	prometheus.MustRegister(sendDuration)
	prometheus.MustRegister(sendTotal)
}

func recordSend(outcome string, seconds float64) {
	sendDuration.WithLabelValues(outcome).Observe(seconds)
	sendTotal.WithLabelValues(outcome).Inc()
}
