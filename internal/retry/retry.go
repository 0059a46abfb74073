package retry

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Options controls how many attempts are made and how long the linear
// backoff waits between them (base * attempt number).
type Options struct {
	Retries   int
	BaseDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Retries <= 0 {
		o.Retries = 3
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = 600 * time.Millisecond
	}
	return o
}

// IsTransient classifies connection-reset / fetch-failure style errors.
// Anything else is considered permanent and must not be retried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "failed to fetch") ||
		strings.Contains(msg, "network error") ||
		strings.Contains(msg, "i/o timeout")
}

// Do runs fn up to opts.Retries times, retrying only transient network
// errors. The label is for logs only. The last error is returned as-is so
// callers keep their own taxonomy.
func Do(ctx context.Context, log *zap.Logger, label string, opts Options, fn func() error) error {
	opts = opts.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= opts.Retries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !IsTransient(lastErr) || attempt == opts.Retries {
			return lastErr
		}

		wait := opts.BaseDelay * time.Duration(attempt)
		if log != nil {
			log.Warn("transient error, retrying",
				zap.String("op", label),
				zap.Int("attempt", attempt),
				zap.Int("retries", opts.Retries),
				zap.Duration("wait", wait),
				zap.Error(lastErr),
			)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return lastErr
}
