package worker

import (
	"context"

	"github.com/ib-77/cuplex/pkg/cuplex"
	"github.com/ib-77/cuplex/pkg/cuplex/node"
	"github.com/ib-77/cuplex/pkg/cuplex/solo"
)

// Serve builds a task that receives values from the caller and replies with
// handle's outcome: Send on success, SendErr on failure. Failed messages are
// replied to as failures without calling handle. The loop ends without error
// when ctx ends.
func Serve[T any](handle func(ctx context.Context, in T) (T, error)) Task[T] {
	return func(ctx context.Context, tx *node.Node[T]) error {
		for {
			in, err := tx.Recv(ctx)
			if err != nil {
				if cuplex.IsCancellationError(err) {
					return nil
				}
				return err
			}

			out := solo.Try(ctx, in, handle)
			if out.IsSuccess() {
				tx.Send(out.Result())
			} else {
				tx.SendErr(out.Err())
			}
		}
	}
}
