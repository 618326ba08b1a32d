package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/ratelimit"
	"github.com/MKhiriev/go-finance-advisor/internal/utils"
)

// withRateLimit throttles a route per client IP. Store failures let the
// request through.
func (h *Handler) withRateLimit(rate string) func(http.Handler) http.Handler {
	limit := ratelimit.MustParseLimit(rate)

	return func(next http.Handler) http.Handler {
		if h.limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			key := route + ":" + utils.ClientIP(r)

			result, err := h.limiter.Allow(r.Context(), key, limit)
			if err != nil {
				log.Err(err).Str("key", key).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

			if !result.Allowed {
				retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				if h.metrics != nil {
					h.metrics.RateLimitDenied.WithLabelValues(route).Inc()
				}

				log.Info().Str("key", key).Msg("rate limit exceeded")
				writeHTTPError(w, http.StatusTooManyRequests, "Rate limit exceeded: "+limit.String())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
