package bfetch

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Reducer transforms one value into the next value of the same type. A reducer that returns an error stops the
// chain it is part of.
type Reducer[T any] interface {
	Reduce(ctx context.Context, v T) (T, error)
}

// ReducerFunc allow casting a function to implement [Reducer].
type ReducerFunc[T any] func(context.Context, T) (T, error)

// Reduce implements the [Reducer] interface.
func (f ReducerFunc[T]) Reduce(ctx context.Context, v T) (T, error) {
	return f(ctx, v)
}

// Outcome is the settled result of an asynchronous reduction.
type Outcome[T any] struct {
	Value T
	Err   error
}

// ErrNoOutcome is returned by an [Async] reducer whose channel was closed without delivering an outcome.
var ErrNoOutcome = errors.New("bfetch: pending reduction closed without an outcome")

// Async turns a function that starts work and hands back a channel into a [Reducer]. The reducer blocks until the
// outcome arrives or the context is done, whichever comes first.
func Async[T any](start func(ctx context.Context, v T) <-chan Outcome[T]) Reducer[T] {
	return ReducerFunc[T](func(ctx context.Context, v T) (T, error) {
		var zero T
		select {
		case out, ok := <-start(ctx, v):
			if !ok {
				return zero, ErrNoOutcome
			}
			if out.Err != nil {
				return zero, out.Err
			}
			return out.Value, nil
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	})
}

// Resolved returns a channel that already holds a successful outcome.
func Resolved[T any](v T) <-chan Outcome[T] {
	ch := make(chan Outcome[T], 1)
	ch <- Outcome[T]{Value: v}
	close(ch)
	return ch
}

// Rejected returns a channel that already holds a failed outcome.
func Rejected[T any](err error) <-chan Outcome[T] {
	ch := make(chan Outcome[T], 1)
	ch <- Outcome[T]{Err: err}
	close(ch)
	return ch
}
