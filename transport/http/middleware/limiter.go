package middleware

import (
	"errors"
	"lessons/shared"
	"lessons/shared/cache"
	"lessons/shared/constant"
	"lessons/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	headerRetryAfter  = "Retry-After"
)

// RateLimit counts requests per client in fixed windows of WindowSeconds. The window start is
// part of the key, so saving the counter never stretches a window. A cache failure lets the
// request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := max(1, a.config.App.RateLimiter.WindowSeconds)

			now := time.Now().Unix()
			windowStart := now - now%int64(windowSecs)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), strconv.FormatInt(windowStart, 10))

			var count int

			err := a.cache.Get(r.Context(), cacheKey, &count)
			switch {
			case errors.Is(err, cache.Nil):
				count = 1
			case err != nil:
				log.Warn().Err(err).Msg("rate limiter cache unavailable, allowing request")
				next.ServeHTTP(w, r)

				return
			default:
				count++
			}

			if count > maxReqs {
				w.Header().Set(headerRetryAfter, strconv.FormatInt(windowStart+int64(windowSecs)-now, 10))
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				log.Warn().Err(err).Msg("failed to save rate limit counter, allowing request")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys the limiter. chi's RealIP middleware runs first and has already moved
// X-Forwarded-For or X-Real-IP into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
