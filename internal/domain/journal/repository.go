package journal

import "context"

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// List returns entries oldest first.
	List(ctx context.Context) ([]Entry, error)
}
