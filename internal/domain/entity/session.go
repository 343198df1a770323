package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus represents the health of the real-time channel.
type ConnectionStatus string

const (
	StatusDisconnected ConnectionStatus = "disconnected"
	StatusConnecting   ConnectionStatus = "connecting"
	StatusConnected    ConnectionStatus = "connected"
)

// Credentials identifies the authenticated user for connection establishment.
// Absent credentials mean the user is logged out.
type Credentials struct {
	Token     string    // Raw access token, passed as a connection-time query parameter.
	UserID    uuid.UUID // The user's id, extracted from the token's subject claim.
	ExpiresAt time.Time // Token expiry; zero when the token carries no exp claim.
}

// Expired reports whether the credentials are past their expiry.
func (c Credentials) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// SessionState is a point-in-time snapshot of the connection session,
// exposed to collaborators as the connectivity indicator.
type SessionState struct {
	SessionID  uuid.UUID        `json:"session_id"`
	UserID     uuid.UUID        `json:"user_id,omitempty"`
	Status     ConnectionStatus `json:"status"`
	QueueDepth int              `json:"queue_depth"`
}
