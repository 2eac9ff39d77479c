package openapi

import (
	"context"
)

// Future is the handle of a call running in its own goroutine.
type Future[T any] struct {
	op     *Operation
	done   chan struct{}
	result Result[T]
	err    error
}

// CallAsync starts op and returns immediately. The request is built and
// interpreted exactly as in CallWithHTTPInfo; cancel ctx to abort the
// underlying transport call.
func CallAsync[T any](ctx context.Context, c *Client, op *Operation, params Params) *Future[T] {
	f := &Future[T]{op: op, done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.result, f.err = CallWithHTTPInfo[T](ctx, c, op, params)
	}()

	return f
}

// Done is closed once the call has completed
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the call completes or ctx is done. Giving up on ctx does
// not cancel the call itself; the wait fails with a TransportError wrapping
// ctx.Err().
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	result, err := f.WaitWithHTTPInfo(ctx)
	return result.Value, err
}

// WaitWithHTTPInfo is Wait with the response metadata
func (f *Future[T]) WaitWithHTTPInfo(ctx context.Context) (Result[T], error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		err := &TransportError{Err: ctx.Err()}
		if f.op != nil {
			err.Operation = f.op.ID
			err.Method = f.op.Method
			err.URL = f.op.Path
		}
		return Result[T]{}, err
	}
}

// Result blocks until the call completes and returns its outcome
func (f *Future[T]) Result() (Result[T], error) {
	<-f.done
	return f.result, f.err
}
