package worker

import (
	"context"
	"runtime"

	"github.com/ib-77/cuplex/pkg/cuplex"
	"github.com/ib-77/cuplex/pkg/cuplex/core"
	"github.com/ib-77/cuplex/pkg/cuplex/node"
)

// Pool spawns one worker per task and merges their root ends into the first
// one. It returns cuplex.ErrEmptyPool when tasks is empty.
func Pool[T any](ctx context.Context, tasks ...Task[T]) (*node.Node[T], error) {
	if len(tasks) == 0 {
		return nil, cuplex.ErrEmptyPool
	}

	rx := Spawn(ctx, tasks[0])
	for _, task := range tasks[1:] {
		rx = rx.Merge(Spawn(ctx, task))
	}
	return rx, nil
}

// PoolOf runs lines copies of task. For lines <= 0 the count comes from
// core.WithWorkerOptions, defaulting to runtime.NumCPU().
func PoolOf[T any](ctx context.Context, task Task[T], lines int) (*node.Node[T], error) {
	if lines <= 0 {
		lines = core.GetWorkerMaxCount(ctx, runtime.NumCPU())
	}
	tasks := make([]Task[T], lines)
	for i := range tasks {
		tasks[i] = task
	}
	return Pool(ctx, tasks...)
}
