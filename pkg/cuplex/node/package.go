package node

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ib-77/cuplex/pkg/cuplex"
)

// Package is an in-flight envelope. Its future is settled exactly once, by
// the receiving side.
type Package[T any] struct {
	id    uuid.UUID
	msg   cuplex.Result[T]
	once  sync.Once
	taken *Future
}

func newPackage[T any](msg cuplex.Result[T]) *Package[T] {
	return &Package[T]{
		id:    uuid.New(),
		msg:   msg,
		taken: newFuture(1),
	}
}

func (p *Package[T]) Id() uuid.UUID {
	return p.id
}

func (p *Package[T]) Message() cuplex.Result[T] {
	return p.msg
}

// Accept settles the sender's handshake. A message sent with SendErr rejects
// the sender's future with the original error; any other message resolves it.
// Only the first call has an effect; it reports whether it was that call.
func (p *Package[T]) Accept() bool {
	settled := false
	p.once.Do(func() {
		if !p.msg.IsSuccess() {
			p.taken.err = &cuplex.RejectedError{Payload: p.msg.Err()}
		}
		close(p.taken.done)
		settled = true
	})
	return settled
}

// Taken is the sender's future for this package.
func (p *Package[T]) Taken() *Future {
	return p.taken
}
