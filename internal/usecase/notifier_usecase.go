package usecase

import (
	"context"
	"encoding/json"

	"beacon/internal/domain/entity"
)

// NotifierUsecase is the serial notification delivery pipeline: an ordered
// queue of pending events drained into one visible presentation at a time.
type NotifierUsecase interface {
	// HandleFrame classifies an inbound frame and, for well-formed
	// notification events, appends to the queue tail. Malformed frames
	// are dropped silently.
	HandleFrame(event string, data json.RawMessage)

	// TapActive routes a user tap on the visible notification: when it
	// carries a navigation target, a read acknowledgment is emitted for
	// its id and then navigation is performed.
	TapActive(ctx context.Context)

	// SetAuthenticated flips the credential gate. Turning it off discards
	// all queued events immediately; the currently visible item, if any,
	// finishes its own dwell.
	SetAuthenticated(authed bool)

	// SetRouteGate marks whether the active navigation context is within
	// the pre-authentication flow. Events arriving while it is are
	// discarded, not deferred.
	SetRouteGate(inAuthFlow bool)

	// QueueDepth reports the number of pending (unpresented) events.
	QueueDepth() int

	// Active returns the currently presented event, or nil.
	Active() *entity.Notification
}
