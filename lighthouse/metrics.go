package lighthouse

import "github.com/prometheus/client_golang/prometheus"

// metrics are the client-side counters/gauges every Client keeps. They are
// not registered with prometheus.DefaultRegisterer (or any registerer), so
// multiple Clients in one process don't collide. Client does not export its
// metrics, so they are reachable only from inside this package.
type metrics struct {
	requestsInFlight prometheus.Gauge
	streamsOpen      prometheus.Gauge
	bytesSent        prometheus.Counter
	bytesReceived    prometheus.Counter
	stopsSent        prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		requestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lighthouse_client",
			Name:      "requests_in_flight",
			Help:      "One-shot requests awaiting a response.",
		}),
		streamsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lighthouse_client",
			Name:      "streams_open",
			Help:      "STREAM requests with an open, unguarded consumer.",
		}),
		bytesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lighthouse_client",
			Name:      "bytes_sent_total",
			Help:      "Bytes written to the WebSocket connection.",
		}),
		bytesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lighthouse_client",
			Name:      "bytes_received_total",
			Help:      "Bytes read from the WebSocket connection.",
		}),
		stopsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lighthouse_client",
			Name:      "stops_sent_total",
			Help:      "Fire-and-forget STOP requests sent by stream guards.",
		}),
	}
}

// Collectors returns every metric, for registration with a
// prometheus.Registerer.
func (m *metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.requestsInFlight, m.streamsOpen, m.bytesSent, m.bytesReceived, m.stopsSent,
	}
}
