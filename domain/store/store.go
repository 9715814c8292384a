package store

import "context"

// Store is the base persistence contract implemented by every aggregate store.
// Lookups are shaped with Options; implementations translate them to SQL.
type Store[T any] interface {
	Save(ctx context.Context, value T) (T, error)
	Find(ctx context.Context, options ...Option) ([]T, error)
	FindOne(ctx context.Context, options ...Option) (T, error)
	Count(ctx context.Context, options ...Option) (int64, error)
	Exists(ctx context.Context, options ...Option) (bool, error)
	Delete(ctx context.Context, value T) error
}
