package middleware

import (
	"math"
	"strconv"

	deliverycontext "devconnects/internal/delivery/context"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/infra/metrics"
	"devconnects/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware applies the per-user message limiter to REST sends.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	metrics *metrics.Collector
}

func NewRateLimitMiddleware(limiters *ratelimit.Limiters, collector *metrics.Collector) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiters.Messages, metrics: collector}
}

// Messages must run after Authenticate. Anonymous requests are keyed by client ip.
func (m *RateLimitMiddleware) Messages(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := deliverycontext.GetUserID(c)
		if key == "" {
			key = "ip:" + c.RealIP()
		}

		if !m.limiter.Allow(key) {
			m.metrics.RateLimited("http_message")
			retryAfter := int(math.Ceil(m.limiter.RetryAfter().Seconds()))
			c.Response().Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
