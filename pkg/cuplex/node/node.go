package node

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/cuplex/pkg/cuplex"
)

// Receivability tells whether Recv on a node may still succeed.
type Receivability int

const (
	// Terminal: a root without children. Nothing can ever feed it once its
	// queue is empty.
	Terminal Receivability = iota
	// Pending: a root with children that may still send upward.
	Pending
	// Fed: a node with a parent, which may broadcast down to it at any time.
	Fed
)

func (r Receivability) String() string {
	switch r {
	case Terminal:
		return "terminal"
	case Pending:
		return "pending"
	case Fed:
		return "fed"
	}
	return "unknown"
}

type delivery[T any] struct {
	msg cuplex.Result[T]
	err error
}

type receiver[T any] struct {
	ch chan delivery[T]
}

// Node is one vertex of a channel tree. A node with a parent sends upward to
// it; a root broadcasts to all of its current children. Every node receives
// from its own queue.
//
// Each node guards its queue, children, receivers and joiners with its own
// mutex. When two locks are held the child's is always taken first.
type Node[T any] struct {
	id  uuid.UUID
	cfg config

	mu        sync.Mutex
	queue     []*Package[T]
	parent    *Node[T]
	children  map[uuid.UUID]*Node[T]
	receivers []*receiver[T]
	joiners   []chan struct{}
}

// New creates a root node.
func New[T any](opts ...Option) *Node[T] {
	return newNode[T](newConfig(opts))
}

func newNode[T any](cfg config) *Node[T] {
	return &Node[T]{
		id:       uuid.New(),
		cfg:      cfg,
		children: make(map[uuid.UUID]*Node[T]),
	}
}

// Duplex creates the two ends of one logical channel: rx is a root and tx
// its only child.
func Duplex[T any](opts ...Option) (rx, tx *Node[T]) {
	rx = New[T](opts...)
	tx = rx.Spawn()
	return rx, tx
}

func (n *Node[T]) ID() uuid.UUID {
	return n.id
}

// Spawn creates a child of n.
func (n *Node[T]) Spawn() *Node[T] {
	child := newNode[T](n.cfg)
	child.parent = n

	n.mu.Lock()
	n.children[child.id] = child
	n.mu.Unlock()

	n.cfg.logger.Debug("node spawned",
		zap.Stringer("parent", n.id), zap.Stringer("node", child.id))
	return child
}

// Len returns the number of packages waiting in n's queue.
func (n *Node[T]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.queue)
}

func (n *Node[T]) ChildCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.children)
}

func (n *Node[T]) Receivability() Receivability {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.receivabilityLocked()
}

func (n *Node[T]) receivabilityLocked() Receivability {
	switch {
	case n.parent != nil:
		return Fed
	case len(n.children) > 0:
		return Pending
	default:
		return Terminal
	}
}

// Send dispatches v. On a node with a parent the package is queued on the
// parent and the future settles when the parent side receives it. On a root
// a copy is queued on every current child and the future settles once all
// copies were received; with no children it is already settled and empty.
func (n *Node[T]) Send(v T) *Future {
	return n.dispatch(cuplex.Success(v))
}

// SendErr dispatches err like Send. The receiver gets a failed Result; the
// sender's future rejects with a *cuplex.RejectedError once it is received.
func (n *Node[T]) SendErr(err error) *Future {
	return n.dispatch(cuplex.Fail[T](err))
}

func (n *Node[T]) dispatch(msg cuplex.Result[T]) *Future {
	n.mu.Lock()
	if p := n.parent; p != nil {
		pkg := newPackage(msg)
		p.push(pkg)
		n.mu.Unlock()
		return pkg.taken
	}
	children := n.childrenLocked()
	n.mu.Unlock()

	parts := make([]*Future, 0, len(children))
	for _, c := range children {
		pkg := newPackage(msg)
		c.push(pkg)
		parts = append(parts, pkg.taken)
	}
	return all(parts)
}

func (n *Node[T]) childrenLocked() []*Node[T] {
	out := make([]*Node[T], 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out
}

func (n *Node[T]) push(pkg *Package[T]) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enqueueLocked(pkg)
}

// enqueueLocked hands pkg to the oldest waiting receiver, or queues it.
// Receivers only wait while the queue is empty, so FIFO order is kept.
func (n *Node[T]) enqueueLocked(pkg *Package[T]) {
	if len(n.receivers) > 0 {
		r := n.receivers[0]
		n.receivers[0] = nil
		n.receivers = n.receivers[1:]
		pkg.Accept()
		r.ch <- delivery[T]{msg: pkg.msg}
		return
	}
	n.queue = append(n.queue, pkg)
}

func (n *Node[T]) popLocked() *Package[T] {
	pkg := n.queue[0]
	n.queue[0] = nil
	n.queue = n.queue[1:]
	pkg.Accept()
	return pkg
}

// Recv takes the oldest package queued on n and accepts it, waiting for one
// if needed. It returns cuplex.ErrNoChildren when n is a root whose queue is
// empty and whose last child has gone, including when that happens while
// waiting. If ctx ends first, ctx.Err() is returned and nothing is consumed.
func (n *Node[T]) Recv(ctx context.Context) (cuplex.Result[T], error) {
	n.mu.Lock()
	if len(n.queue) > 0 {
		pkg := n.popLocked()
		n.mu.Unlock()
		return pkg.msg, nil
	}
	if n.receivabilityLocked() == Terminal {
		n.mu.Unlock()
		n.cfg.logger.Debug("receive on terminal node", zap.Stringer("node", n.id))
		return cuplex.Result[T]{}, cuplex.ErrNoChildren
	}
	r := &receiver[T]{ch: make(chan delivery[T], 1)}
	n.receivers = append(n.receivers, r)
	n.mu.Unlock()

	select {
	case d := <-r.ch:
		return d.msg, d.err
	case <-ctx.Done():
		n.mu.Lock()
		removed := n.removeReceiverLocked(r)
		n.mu.Unlock()
		if removed {
			return cuplex.Result[T]{}, ctx.Err()
		}
		// already handed a package (or a failure) before we could leave
		d := <-r.ch
		return d.msg, d.err
	}
}

func (n *Node[T]) removeReceiverLocked(r *receiver[T]) bool {
	for i, x := range n.receivers {
		if x == r {
			n.receivers = append(n.receivers[:i], n.receivers[i+1:]...)
			return true
		}
	}
	return false
}

// Detach removes n from its parent. If the parent is left without children
// its joiners are released and, for a root, its waiting receivers fail.
// Detaching a node without a parent does nothing.
func (n *Node[T]) Detach() {
	n.mu.Lock()
	defer n.mu.Unlock()

	p := n.parent
	if p == nil {
		return
	}
	p.mu.Lock()
	delete(p.children, n.id)
	p.wakeLocked()
	p.mu.Unlock()

	n.parent = nil
	n.wakeLocked()

	n.cfg.logger.Debug("node detached",
		zap.Stringer("parent", p.id), zap.Stringer("node", n.id))
}

// wakeLocked re-evaluates the waiters of n after its children or parent
// changed.
func (n *Node[T]) wakeLocked() {
	if len(n.children) > 0 {
		return
	}
	for _, j := range n.joiners {
		close(j)
	}
	n.joiners = nil

	if n.parent != nil || len(n.queue) > 0 || len(n.receivers) == 0 {
		return
	}
	n.cfg.logger.Debug("failing receivers of terminal node",
		zap.Stringer("node", n.id), zap.Int("receivers", len(n.receivers)))
	for _, r := range n.receivers {
		r.ch <- delivery[T]{err: cuplex.ErrNoChildren}
	}
	n.receivers = nil
}

// Merge moves every child of other under n and re-queues on n every package
// still waiting on other, so nothing sent before the merge is lost. other is
// left as a childless root. Merging a node into itself or into one of its
// own descendants is not supported.
func (n *Node[T]) Merge(other *Node[T]) *Node[T] {
	if other == nil || other == n {
		return n
	}

	other.mu.Lock()
	moved := other.childrenLocked()
	other.mu.Unlock()

	for _, c := range moved {
		c.mu.Lock()
		if c.parent == other {
			n.mu.Lock()
			n.children[c.id] = c
			n.mu.Unlock()
			c.parent = n
		}
		c.mu.Unlock()
	}

	// children now push to n, so other's queue can only shrink from here
	other.mu.Lock()
	for _, c := range moved {
		delete(other.children, c.id)
	}
	pending := other.queue
	other.queue = nil
	other.wakeLocked()
	other.mu.Unlock()

	n.mu.Lock()
	for _, pkg := range pending {
		n.enqueueLocked(pkg)
	}
	n.mu.Unlock()

	n.cfg.logger.Debug("node merged",
		zap.Stringer("node", n.id), zap.Stringer("merged", other.id),
		zap.Int("children", len(moved)), zap.Int("replayed", len(pending)))
	return n
}

// Join waits until n has no children. It returns at once when n has none.
func (n *Node[T]) Join(ctx context.Context) error {
	n.mu.Lock()
	if len(n.children) == 0 {
		n.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	n.joiners = append(n.joiners, ch)
	n.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, j := range n.joiners {
			if j == ch {
				n.joiners = append(n.joiners[:i], n.joiners[i+1:]...)
				return ctx.Err()
			}
		}
		// released concurrently
		return nil
	}
}
