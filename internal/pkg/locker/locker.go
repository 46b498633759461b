package locker

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned when the write lock cannot be acquired within the
// configured wait. Callers should surface it as retryable; no state has
// changed when it is returned.
var ErrTimeout = errors.New("write lock acquisition timed out")

// WriteLock serializes every mutating operation behind a single slot with a
// bounded wait. The backing store has no native cross-request transactions
// spanning multiple tables, so writers take this lock for the duration of the
// whole mutation; readers bypass it and tolerate in-flight snapshots.
type WriteLock struct {
	slot    chan struct{}
	timeout time.Duration
}

func NewWriteLock(timeout time.Duration) *WriteLock {
	return &WriteLock{
		slot:    make(chan struct{}, 1),
		timeout: timeout,
	}
}

// Acquire blocks until the lock is free, the wait times out, or ctx is
// cancelled. A context deadline expiring while queued is the same outcome as
// the configured wait elapsing, so both surface as ErrTimeout. On success the
// caller must Release.
func (l *WriteLock) Acquire(ctx context.Context) error {
	timer := time.NewTimer(l.timeout)
	defer timer.Stop()

	select {
	case l.slot <- struct{}{}:
		return nil
	case <-timer.C:
		return ErrTimeout
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ctx.Err()
	}
}

func (l *WriteLock) Release() {
	<-l.slot
}

// WithLock runs fn while holding the lock. Cancellation only applies to
// acquisition: once fn starts it runs to completion.
func (l *WriteLock) WithLock(ctx context.Context, fn func() error) error {
	if err := l.Acquire(ctx); err != nil {
		return err
	}
	defer l.Release()
	return fn()
}
