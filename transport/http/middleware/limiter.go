package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"innflow/shared"
	"innflow/shared/cache"
	"innflow/shared/constant"
	"innflow/transport/http/response"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
	idleTimeout       = time.Minute
)

// RateLimit counts requests per client and user agent in redis over a fixed
// window. When redis is unavailable the same budget is enforced per process
// with a token bucket.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			userAgent := a.getUA(r)
			clientIP := a.getClientIP(r)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP, userAgent)

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			switch {
			case cache.IsMiss(err):
				count = 1
			case err != nil:
				a.limitLocally(w, r, next, cacheKey)

				return
			default:
				count++
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				a.limitLocally(w, r, next, cacheKey)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) limitLocally(w http.ResponseWriter, r *http.Request, next http.Handler, key string) {
	if !a.localLimiter(key).Allow() {
		log.Warn().Str("key", key).Msg("rate limit exceeded")
		response.WithRequestLimitExceeded(w)

		return
	}

	next.ServeHTTP(w, r)
}

type localLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func (a *appMiddleware) localLimiter(key string) *rate.Limiter {
	a.mu.Lock()
	defer a.mu.Unlock()

	window := time.Duration(max(a.config.App.RateLimiter.WindowSeconds, 1)) * time.Second
	now := a.now()

	a.sweep(now, max(idleTimeout, 2*window))

	entry, ok := a.fallback[key]
	if !ok {
		maxReqs := max(a.config.App.RateLimiter.MaxRequests, 1)

		entry = &localLimiter{limiter: rate.NewLimiter(rate.Every(window/time.Duration(maxReqs)), maxReqs)}
		a.fallback[key] = entry
	}

	entry.lastSeen = now

	return entry.limiter
}

// sweep drops limiters not used for longer than idle. It runs at most once per
// idle period. Callers hold a.mu.
func (a *appMiddleware) sweep(now time.Time, idle time.Duration) {
	if now.Sub(a.lastSweep) < idle {
		return
	}

	a.lastSweep = now

	for key, entry := range a.fallback {
		if now.Sub(entry.lastSeen) > idle {
			delete(a.fallback, key)
		}
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For can hold a chain; the first entry is the client
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
