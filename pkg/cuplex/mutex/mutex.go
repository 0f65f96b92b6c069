package mutex

import (
	"context"
	"sync"

	"github.com/ib-77/cuplex/pkg/cuplex"
	"github.com/ib-77/cuplex/pkg/cuplex/node"
)

type token struct{}

// Release hands a token back. Calls after the first are ignored.
type Release func()

// Mutex admits at most count holders at a time.
type Mutex struct {
	rx    *node.Node[token]
	tx    *node.Node[token]
	count int
}

// New builds a Mutex with count tokens. It returns cuplex.ErrInvalidCount
// when count < 1.
func New(count int, opts ...node.Option) (*Mutex, error) {
	if count < 1 {
		return nil, cuplex.ErrInvalidCount
	}
	rx, tx := node.Duplex[token](opts...)
	for i := 0; i < count; i++ {
		tx.Send(token{})
	}
	return &Mutex{rx: rx, tx: tx, count: count}, nil
}

// Lock is a Mutex with a single token.
func Lock(opts ...node.Option) *Mutex {
	m, _ := New(1, opts...)
	return m
}

// Acquire waits for a token. If ctx ends first no token is taken.
func (m *Mutex) Acquire(ctx context.Context) (Release, error) {
	if _, err := m.rx.Recv(ctx); err != nil {
		return nil, err
	}
	var once sync.Once
	return func() {
		once.Do(func() { m.tx.Send(token{}) })
	}, nil
}

// Available returns the number of tokens nobody holds.
func (m *Mutex) Available() int {
	return m.rx.Len()
}

func (m *Mutex) Count() int {
	return m.count
}
