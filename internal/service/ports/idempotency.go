package ports

import "context"

// IdempotencyStore remembers which reservation a client-supplied key produced.
//
// Reserve returns the stored reservation id for a completed key, "" when the
// key was free and is now held by the caller, or domain.ErrRequestInProgress
// when another request holds it.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (string, error)
	Complete(ctx context.Context, key, reservationID string) error
	Release(ctx context.Context, key string) error
}
