package solo

import (
	"context"

	"github.com/ib-77/cuplex/pkg/cuplex"
)

func Succeed[T any](input T) cuplex.Result[T] {
	return cuplex.Success(input)
}

func Fail[T any](err error) cuplex.Result[T] {
	return cuplex.Fail[T](err)
}

func Switch[In any, Out any](ctx context.Context,
	input cuplex.Result[In],
	onSuccess func(ctx context.Context, r In) cuplex.Result[Out]) cuplex.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return cuplex.Fail[Out](input.Err())
}

func Map[In any, Out any](ctx context.Context,
	input cuplex.Result[In],
	onSuccess func(ctx context.Context, r In) Out) cuplex.Result[Out] {

	if input.IsSuccess() {
		return cuplex.Success(onSuccess(ctx, input.Result()))
	}
	return cuplex.Fail[Out](input.Err())
}

func Tee[T any](ctx context.Context,
	input cuplex.Result[T],
	onSuccess func(ctx context.Context, r cuplex.Result[T])) cuplex.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}
	return input
}

func Try[In any, Out any](ctx context.Context, input cuplex.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) cuplex.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return cuplex.Fail[Out](err)
		}
		return cuplex.Success(out)
	}
	return cuplex.Fail[Out](input.Err())
}

func Finally[In, Out any](ctx context.Context, input cuplex.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
