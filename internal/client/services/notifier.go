package services

import "context"

// Notifier reports the user-visible outcome of an operation, the way a
// mobile client shows an alert. Implementations must be safe for concurrent
// use.
type Notifier interface {
	Success(ctx context.Context, title, msg string)
	Failure(ctx context.Context, title, msg string)
}

// RefreshFunc reloads the gallery after a mutation.
type RefreshFunc func(ctx context.Context) error
