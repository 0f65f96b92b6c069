package worker

import (
	"context"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/ib-77/cuplex/pkg/cuplex"
	"github.com/ib-77/cuplex/pkg/cuplex/core"
	"github.com/ib-77/cuplex/pkg/cuplex/node"
)

// Task is the body of a worker. tx is the worker's end of the channel: Send
// goes to the caller, Recv gets what the caller broadcasts.
type Task[T any] func(ctx context.Context, tx *node.Node[T]) error

// Spawn starts task on the child end of a new duplex pair and returns the
// root end. A returned error or a panic is forwarded with SendErr; the child
// end is detached in every case.
func Spawn[T any](ctx context.Context, task Task[T], opts ...node.Option) *node.Node[T] {
	logger := core.Logger(ctx)
	opts = append([]node.Option{node.WithLogger(logger)}, opts...)

	rx, tx := node.Duplex[T](opts...)
	go run(ctx, logger, task, tx)
	return rx
}

func run[T any](ctx context.Context, logger *zap.Logger, task Task[T], tx *node.Node[T]) {
	defer tx.Detach()

	if err := call(ctx, task, tx); err != nil {
		logger.Debug("worker failed", zap.Stringer("node", tx.ID()), zap.Error(err))
		tx.SendErr(err)
	}
}

func call[T any](ctx context.Context, task Task[T], tx *node.Node[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &cuplex.RecoveryError{
				PanicValue: r,
				StackTrace: string(debug.Stack()),
			}
		}
	}()
	return task(ctx, tx)
}
