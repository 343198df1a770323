// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// SessionUsecase owns the connection lifecycle of the real-time channel.
// Exactly one session is ever active; authentication transitions mutate it
// in place.
type SessionUsecase interface {
	// Resume connects using previously stored credentials, if any.
	// Absent or expired credentials are not an error.
	Resume(ctx context.Context) error

	// Login stores the token and opens a connection for it. Any existing
	// session is torn down first.
	Login(ctx context.Context, token string) error

	// Logout tears the connection down, cancels pending reconnection
	// timers, discards all queued notification state and clears stored
	// credentials. Runs synchronously so no stale connection survives a
	// user switch.
	Logout(ctx context.Context) error

	// State returns the connectivity indicator snapshot.
	State() entity.SessionState
}
