package ports

import "context"

// Port: a source supplying the full collection of records of one type,
// used once at startup and on explicit refresh.
type Loader[T any] interface {
	// Return every record known to the source.
	Load(ctx context.Context) ([]T, error)
}

// LoaderFunc adapts a function to the Loader port.
type LoaderFunc[T any] func(ctx context.Context) ([]T, error)

func (f LoaderFunc[T]) Load(ctx context.Context) ([]T, error) { return f(ctx) }
