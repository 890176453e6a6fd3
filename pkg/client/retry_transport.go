package client

import (
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RetryTransport retries requests answered with 429 Too Many Requests or
// 503 Service Unavailable, honoring the Retry-After header.
type RetryTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		res, err := transport.RoundTrip(req)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if !isRetryable(res.StatusCode) || attempt >= t.MaxRetries {
			return res, nil
		}

		waitTime := t.getWaitTime(res)

		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()

		slog.WarnContext(ctx, "server asked to retry later", slog.Int("status", res.StatusCode), slog.Duration("wait", waitTime), slog.Int("attempt", attempt+1))

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-time.After(waitTime):
		}

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}
			req.Body = body
		} else if req.Body != nil && req.Body != http.NoBody {
			return nil, errors.New("cannot retry request with one-time reader body")
		}
	}
}

func isRetryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode == http.StatusServiceUnavailable
}

func (t *RetryTransport) getWaitTime(res *http.Response) time.Duration {
	retryAfter := res.Header.Get("Retry-After")
	if retryAfter == "" {
		return t.DefaultWait
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		wait := time.Duration(seconds) * time.Second
		jitter := time.Duration(rand.Float64() * float64(time.Second))
		return wait + jitter
	}

	if date, err := http.ParseTime(retryAfter); err == nil {
		if wait := time.Until(date); wait > 0 {
			return wait
		}
	}

	return t.DefaultWait
}

var _ http.RoundTripper = &RetryTransport{}
