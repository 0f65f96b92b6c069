package core

import (
	"context"
	"errors"

	"github.com/ib-77/cuplex/pkg/cuplex"
	"github.com/ib-77/cuplex/pkg/cuplex/node"
)

// SendMany dispatches every value through n in order and returns the
// handshake futures in the same order.
func SendMany[T any](n *node.Node[T], values ...T) []*node.Future {
	futures := make([]*node.Future, 0, len(values))
	for _, v := range values {
		futures = append(futures, n.Send(v))
	}
	return futures
}

// WaitAll waits for every future and joins their rejections.
func WaitAll(ctx context.Context, futures []*node.Future) error {
	var errs []error
	for _, f := range futures {
		if err := f.Wait(ctx); err != nil {
			if cuplex.IsCancellationError(err) {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FromNodeN receives exactly count results from n. On error it returns what
// was received so far together with the error.
func FromNodeN[T any](ctx context.Context, n *node.Node[T], count int) ([]cuplex.Result[T], error) {
	res := make([]cuplex.Result[T], 0, count)
	for i := 0; i < count; i++ {
		msg, err := n.Recv(ctx)
		if err != nil {
			return res, err
		}
		res = append(res, msg)
	}
	return res, nil
}

// FromNodeMany receives from n until it reports cuplex.ErrNoChildren, which
// ends the stream without an error.
func FromNodeMany[T any](ctx context.Context, n *node.Node[T]) ([]cuplex.Result[T], error) {
	res := make([]cuplex.Result[T], 0)
	for {
		msg, err := n.Recv(ctx)
		if errors.Is(err, cuplex.ErrNoChildren) {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, msg)
	}
}

// Values keeps the payloads of successful results, in order.
func Values[T any](results []cuplex.Result[T]) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsSuccess() {
			out = append(out, r.Result())
		}
	}
	return out
}
