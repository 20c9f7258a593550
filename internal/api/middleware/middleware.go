package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"aircraft-manufacturing-backend/internal/config"
	"aircraft-manufacturing-backend/internal/logger"
	"aircraft-manufacturing-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Logger logs each request with method, path, status and latency
func Logger() gin.HandlerFunc {
	log := logger.New()
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString("request_id"),
		}).Info("request completed")
	}
}

// Recovery recovers from panics and returns a 500
func Recovery() gin.HandlerFunc {
	log := logger.New()
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic":      r,
					"path":       c.Request.URL.Path,
					"request_id": c.GetString("request_id"),
				}).Error("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}

// RequestID attaches a request ID to every request, honoring an incoming
// X-Request-ID header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// CORS sets cross-origin headers from the configured allow list
func CORS(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, allowed := range cfg.AllowedOrigins {
			if allowed == "*" || allowed == origin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", allowed)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RateLimit applies a per-client-IP token bucket. Limiters are kept for the
// process lifetime; the map only grows with distinct client IPs.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var (
		limiters = make(map[string]*rate.Limiter)
		mu       sync.Mutex
	)

	getLimiter := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if limiter, exists := limiters[ip]; exists {
			return limiter
		}
		limiter := rate.NewLimiter(rate.Limit(rps), burst)
		limiters[ip] = limiter
		return limiter
	}

	return func(c *gin.Context) {
		if !getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}

// Metrics records request counts, latency and in-flight gauges per route.
// The route template (not the raw path) is used as the endpoint label so
// /parts/:id does not explode label cardinality.
func Metrics(registry *metrics.MetricsRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		registry.HTTPRequestsInFlight.WithLabelValues(endpoint).Inc()
		start := time.Now()

		c.Next()

		registry.HTTPRequestsInFlight.WithLabelValues(endpoint).Dec()
		registry.HTTPRequestDuration.WithLabelValues(endpoint, c.Request.Method).
			Observe(time.Since(start).Seconds())
		registry.HTTPRequestsTotal.WithLabelValues(endpoint, c.Request.Method,
			strconv.Itoa(c.Writer.Status())).Inc()
	}
}
