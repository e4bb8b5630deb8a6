package horizon

import "context"

// Future is the result of a request issued without blocking. It resolves
// exactly once; after that, Wait returns the same outcome to every caller.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) resolve(value T, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Done returns a channel that is closed when the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or the context is cancelled.
// Cancellation here only abandons the wait; the request itself is bound to
// the context it was issued with.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	case <-f.done:
		return f.value, f.err
	}
}

// FetchAsync issues a single-record request without blocking. The returned
// future resolves to exactly what Fetch would have returned for the same
// endpoint.
func FetchAsync[R any](ctx context.Context, client *Client, endpoint SingleEndpoint[R]) *Future[*R] {
	future := newFuture[*R]()

	go func() {
		record, err := Fetch(ctx, client, endpoint)
		future.resolve(record, err)
	}()

	return future
}

// FetchPageAsync issues a collection request without blocking. The returned
// future resolves to exactly what FetchPage would have returned for the same
// endpoint.
func FetchPageAsync[R any](ctx context.Context, client *Client, endpoint PageEndpoint[R]) *Future[*Page[R]] {
	future := newFuture[*Page[R]]()

	go func() {
		page, err := FetchPage(ctx, client, endpoint)
		future.resolve(page, err)
	}()

	return future
}
