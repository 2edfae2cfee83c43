package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveHTTP(http.MethodPost, "/api/messages/:receiverId", http.StatusCreated, 20*time.Millisecond)
	c.ConnectionOpened()
	c.ConnectionOpened()
	c.ConnectionClosed()
	c.SetOnlineUsers(3)
	c.HandshakeRejected("no_token")
	c.EventReceived("typing")
	c.Pushed("newMessage", "delivered")
	c.SlowConsumer()
	c.RateLimited("event")
	c.MessagePersisted()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("POST", "/api/messages/:receiverId", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.connections))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.onlineUsers))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.handshakeRejected.WithLabelValues("no_token")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.pushes.WithLabelValues("newMessage", "delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.slowConsumers))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.messagesPersisted))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)
	c.MessagePersisted()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "devconnects_messages_persisted_total 1"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
