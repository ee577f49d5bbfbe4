package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess        = "success"
	OutcomeRemoteError    = "remote_error"
	OutcomeTransportError = "transport_error"
	OutcomeInvalidRequest = "invalid_request"
)

// Metrics counts executor round-trips. A nil *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the executor collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "newsdesk",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "News API requests by HTTP method and outcome.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "newsdesk",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "News API round-trip latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(method string, kind ErrorKind, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, outcome(kind)).Inc()
	if kind != KindInvalidRequest {
		m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	}
}

func outcome(kind ErrorKind) string {
	switch kind {
	case KindTransport:
		return OutcomeTransportError
	case KindRemote:
		return OutcomeRemoteError
	case KindInvalidRequest:
		return OutcomeInvalidRequest
	default:
		return OutcomeSuccess
	}
}
