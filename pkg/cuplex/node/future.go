package node

import (
	"context"
	"errors"
)

// Future is the sender's view of one or more handshakes. It settles once
// every package it covers has been accepted by a receiver.
type Future struct {
	done chan struct{}
	err  error
	size int
}

func newFuture(size int) *Future {
	return &Future{done: make(chan struct{}), size: size}
}

// settledFuture returns an already resolved aggregate of zero handshakes.
func settledFuture() *Future {
	f := newFuture(0)
	close(f.done)
	return f
}

// all joins per-child futures of a broadcast. Rejections are combined with
// errors.Join in child order.
func all(parts []*Future) *Future {
	if len(parts) == 0 {
		return settledFuture()
	}
	f := newFuture(len(parts))
	go func() {
		var errs []error
		for _, p := range parts {
			<-p.done
			if p.err != nil {
				errs = append(errs, p.err)
			}
		}
		f.err = errors.Join(errs...)
		close(f.done)
	}()
	return f
}

// Done is closed once the future settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Err returns the outcome. It is nil until Done is closed.
func (f *Future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Size is the number of handshakes the future aggregates.
func (f *Future) Size() int {
	return f.size
}

// Wait blocks until the future settles or ctx ends. The handshake itself is
// not withdrawn when ctx ends.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
