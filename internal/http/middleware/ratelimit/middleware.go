package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Middleware limits each client to opts.Requests requests per opts.Window.
// Requests over the limit are answered by opts.OnLimited with a Retry-After
// header set.
func Middleware(funcs ...OptionFunc) func(http.Handler) http.Handler {
	opts := NewOptions(funcs...)

	interval := opts.Window / time.Duration(max(opts.Requests, 1))

	// Idle limiters are full again after one window
	cache := expirable.NewLRU[string, *rate.Limiter](opts.CacheSize, nil, opts.Window)

	getLimiter := func(remoteAddr string) *rate.Limiter {
		limiter, exists := cache.Get(remoteAddr)
		if !exists {
			limiter = rate.NewLimiter(rate.Every(interval), opts.Requests)
			cache.Add(remoteAddr, limiter)
		}

		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := getLimiter(remoteAddr(r, opts.TrustHeaders))

			now := time.Now()

			reservation := limiter.ReserveN(now, 1)
			if !reservation.OK() {
				opts.OnLimited.ServeHTTP(w, r)
				return
			}

			if delay := reservation.DelayFrom(now); delay > 0 {
				reservation.CancelAt(now)

				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				opts.OnLimited.ServeHTTP(w, r)
				return
			}

			tokens := limiter.TokensAt(now)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(opts.Requests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(math.Max(0, math.Floor(tokens)))))

			missing := float64(opts.Requests) - tokens
			resetTime := now.Add(time.Duration(missing * float64(interval)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}

func remoteAddr(r *http.Request, trustHeaders bool) string {
	if trustHeaders {
		xff := r.Header.Get("X-Forwarded-For")
		if xff != "" {
			ips := strings.Split(xff, ",")
			if len(ips) > 0 {
				return strings.TrimSpace(ips[0])
			}
		}

		xri := r.Header.Get("X-Real-Ip")
		if xri != "" {
			return xri
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
