package retry

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(syscall.ECONNRESET))
	assert.True(t, IsTransient(syscall.ECONNREFUSED))
	assert.True(t, IsTransient(syscall.EPIPE))
	assert.True(t, IsTransient(errors.New("read tcp 10.0.0.1:5432: connection reset by peer")))
	assert.True(t, IsTransient(errors.New("TypeError: failed to fetch")))
	assert.True(t, IsTransient(errors.New("dial tcp: i/o timeout")))

	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, IsTransient(errors.New("record not found")))
}

func TestDo_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), nil, "op", Options{}, func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientOnly(t *testing.T) {
	calls := 0
	err := Do(context.Background(), nil, "op", Options{Retries: 3, BaseDelay: time.Millisecond}, func() error {
		calls++
		if calls < 3 {
			return syscall.ECONNRESET
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentErrorFailsImmediately(t *testing.T) {
	boom := errors.New("null value in column violates not-null constraint")
	calls := 0
	err := Do(context.Background(), nil, "op", Options{Retries: 3, BaseDelay: time.Millisecond}, func() error {
		calls++
		return boom
	})
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), nil, "op", Options{Retries: 3, BaseDelay: time.Millisecond}, func() error {
		calls++
		return syscall.ECONNREFUSED
	})
	assert.Equal(t, syscall.ECONNREFUSED, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ContextCancelStopsWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- Do(ctx, nil, "op", Options{Retries: 3, BaseDelay: time.Minute}, func() error {
			calls++
			return syscall.ECONNRESET
		})
	}()

	// Let the first attempt land, then cancel during the backoff.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("Do did not return after cancellation")
	}
}
