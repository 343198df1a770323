// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Kind determines the presentation styling of a notification.
type Kind string

const (
	KindInfo    Kind = "INFO"
	KindSuccess Kind = "SUCCESS"
	KindWarning Kind = "WARNING"
	KindError   Kind = "ERROR"
)

// Notification represents a single push-style notification event delivered
// over the real-time channel. The JSON shape matches the server's inbound
// "notification" frame payload.
type Notification struct {
	ID         int64     `json:"id" validate:"required"`    // Server-assigned identity, used for ack correlation.
	Title      string    `json:"title" validate:"required"` // Display title.
	Body       string    `json:"body"`                      // Display body.
	Kind       Kind      `json:"type"`                      // Presentation styling kind.
	NavigateTo string    `json:"navigateTo,omitempty"`      // Optional opaque route descriptor for tap navigation.
	IsRead     bool      `json:"isRead"`                    // Mutated locally on acknowledgment, mirrored server-side.
	CreatedAt  time.Time `json:"createdAt"`                 // Display-only arrival timestamp.
}
