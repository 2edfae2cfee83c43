// Package metrics collects Prometheus metrics for the HTTP surface and the realtime channel.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "devconnects"

// Collector holds every metric the service exports.
type Collector struct {
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
	connections       prometheus.Gauge
	onlineUsers       prometheus.Gauge
	handshakeRejected *prometheus.CounterVec
	events            *prometheus.CounterVec
	pushes            *prometheus.CounterVec
	slowConsumers     prometheus.Counter
	rateLimited       *prometheus.CounterVec
	messagesPersisted prometheus.Counter
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_connections",
			Help:      "Open realtime connections.",
		}),
		onlineUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_online_users",
			Help:      "Users with a presence entry.",
		}),
		handshakeRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_handshake_rejected_total",
			Help:      "Rejected realtime handshakes by reason.",
		}, []string{"reason"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_events_received_total",
			Help:      "Inbound realtime events by name.",
		}, []string{"event"}),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_push_total",
			Help:      "Outbound pushes by event and outcome.",
		}, []string{"event", "outcome"}),
		slowConsumers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_slow_consumers_total",
			Help:      "Connections closed because their send buffer was full.",
		}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests or events rejected by the rate limiter.",
		}, []string{"kind"}),
		messagesPersisted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_persisted_total",
			Help:      "Direct messages stored.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.connections,
		c.onlineUsers,
		c.handshakeRejected,
		c.events,
		c.pushes,
		c.slowConsumers,
		c.rateLimited,
		c.messagesPersisted,
	)

	return c
}

func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *Collector) ConnectionOpened() {
	c.connections.Inc()
}

func (c *Collector) ConnectionClosed() {
	c.connections.Dec()
}

func (c *Collector) SetOnlineUsers(n int) {
	c.onlineUsers.Set(float64(n))
}

func (c *Collector) HandshakeRejected(reason string) {
	c.handshakeRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) EventReceived(event string) {
	c.events.WithLabelValues(event).Inc()
}

// Pushed records one outbound push. outcome is "delivered" or "offline".
func (c *Collector) Pushed(event, outcome string) {
	c.pushes.WithLabelValues(event, outcome).Inc()
}

func (c *Collector) SlowConsumer() {
	c.slowConsumers.Inc()
}

func (c *Collector) RateLimited(kind string) {
	c.rateLimited.WithLabelValues(kind).Inc()
}

func (c *Collector) MessagePersisted() {
	c.messagesPersisted.Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
