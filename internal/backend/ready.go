package backend

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrConfigUnavailable means the backend handle never became available.
var ErrConfigUnavailable = errors.New("backend configuration unavailable")

// Ready is resolved once with the backend handle, or failed once. Later calls to
// Resolve or Fail are ignored.
type Ready struct {
	once    sync.Once
	done    chan struct{}
	handle  *Handle
	err     error
	timeout time.Duration
}

func NewReady(timeout time.Duration) *Ready {
	return &Ready{
		done:    make(chan struct{}),
		timeout: timeout,
	}
}

func (r *Ready) Resolve(h *Handle) {
	r.once.Do(func() {
		r.handle = h
		close(r.done)
	})
}

func (r *Ready) Fail(err error) {
	r.once.Do(func() {
		r.err = errors.Join(ErrConfigUnavailable, err)
		close(r.done)
	})
}

// Wait returns the handle, or ErrConfigUnavailable when it is not there within the
// timeout. A cancelled ctx returns its error.
func (r *Ready) Wait(ctx context.Context) (*Handle, error) {
	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case <-r.done:
		if r.err != nil {
			return nil, r.err
		}
		return r.handle, nil
	case <-timer.C:
		return nil, ErrConfigUnavailable
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
