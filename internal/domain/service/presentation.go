package service

import (
	"beacon/internal/domain/entity"
)

// Renderer displays a single transient notification element. At most one
// element is ever visible; Show replaces any previous element and Hide
// removes it.
type Renderer interface {
	Show(n *entity.Notification)
	Hide()
}

// Navigator performs client navigation to an opaque route descriptor.
// Route resolution failures follow the navigator's own error behavior.
type Navigator interface {
	Push(route string) error
	Replace(route string) error
}

// AckPublisher forwards read acknowledgments to the server over the active
// connection. Sends while disconnected are dropped; the durable read state
// lives server-side behind the REST notification API.
type AckPublisher interface {
	PublishRead(eventID int64) error
	PublishReadAll() error
}
