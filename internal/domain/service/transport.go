// Package service defines the interfaces for infrastructure collaborators
// consumed by the use case layer.
package service

import (
	"context"
	"encoding/json"

	"beacon/internal/domain/entity"

	"github.com/pkg/errors"
)

// Wire event names exchanged over the real-time channel.
const (
	EventNotification = "notification"
	EventRead         = "notification.read"
	EventReadAll      = "notification.readAll"
)

// ErrNotConnected is returned by Emit when no live connection exists.
// Emissions in that state are dropped, never retried.
var ErrNotConnected = errors.New("transport: not connected")

// ConnHandlers holds the named callback slots a consumer binds at dial time.
// All callbacks are invoked from the transport's own goroutine, one at a time.
type ConnHandlers struct {
	OnConnect    func()
	OnDisconnect func(err error)
	OnEvent      func(event string, data json.RawMessage)
	OnError      func(err error)
}

// Conn is a single full-duplex channel carrying event frames in both
// directions. The transport owns its own reconnection policy; Close tears
// the connection down and cancels any pending reconnection timers.
type Conn interface {
	// Emit sends an outbound frame, fire-and-forget.
	Emit(event string, data any) error
	Close() error
}

// Dialer opens a connection parameterized by the current credentials.
// Dial returns immediately; connection establishment (and every retry)
// is reported through the bound handlers.
type Dialer interface {
	Dial(ctx context.Context, creds entity.Credentials, handlers ConnHandlers) (Conn, error)
}
