package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"aufgabe/pkg/response"
)

// RateLimit applies a per-client-IP token bucket. The bucket refills
// at ratePerMin per minute and allows a burst of the same size.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.ratePerMin <= 0 {
			c.Next()
			return
		}

		if !m.limiterFor(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m Middleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	lim, ok := m.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(float64(m.ratePerMin)/60), m.ratePerMin)
		m.limiters[ip] = lim
	}
	return lim
}
