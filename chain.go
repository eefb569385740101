package bfetch

import "context"

// Reduce folds v through the reducers in order. Each reducer receives exactly the value returned by the one before
// it, the first reducer receives v. The fold stops at the first reducer that returns an error and that error is
// returned as-is; reducers after it are never invoked. With no reducers the result is v itself. Nil reducers are
// skipped.
func Reduce[T any](ctx context.Context, v T, reducers ...Reducer[T]) (T, error) {
	acc := v
	for _, r := range reducers {
		if r == nil {
			continue
		}

		next, err := r.Reduce(ctx, acc)
		if err != nil {
			var zero T
			return zero, err
		}

		acc = next
	}

	return acc, nil
}

// Chain is an ordered list of reducers. A Chain is itself a [Reducer] so chains can be nested.
type Chain[T any] []Reducer[T]

// Run folds v through the chain, see [Reduce].
func (c Chain[T]) Run(ctx context.Context, v T) (T, error) {
	return Reduce(ctx, v, c...)
}

// Reduce implements the [Reducer] interface.
func (c Chain[T]) Reduce(ctx context.Context, v T) (T, error) {
	return c.Run(ctx, v)
}

var _ Reducer[Request] = Chain[Request]{}
