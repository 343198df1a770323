package impl

import (
	"log/slog"
	"sync"

	"beacon/internal/domain/service"
)

// AckService forwards read acknowledgments over whichever connection is
// currently attached. Emissions without an attached, live connection are
// dropped; the REST notification API remains the durable read state.
type AckService struct {
	logger *slog.Logger

	mu   sync.Mutex
	conn service.Conn
}

// NewAckService creates the acknowledgment channel.
func NewAckService(logger *slog.Logger) *AckService {
	return &AckService{logger: logger}
}

// Attach points the channel at a new live connection.
func (a *AckService) Attach(conn service.Conn) {
	a.mu.Lock()
	a.conn = conn
	a.mu.Unlock()
}

// Detach disconnects the channel; subsequent sends are dropped.
func (a *AckService) Detach() {
	a.mu.Lock()
	a.conn = nil
	a.mu.Unlock()
}

// PublishRead emits a notification.read acknowledgment, fire-and-forget.
func (a *AckService) PublishRead(eventID int64) error {
	return a.emit(service.EventRead, eventID)
}

// PublishReadAll emits a notification.readAll acknowledgment, fire-and-forget.
func (a *AckService) PublishReadAll() error {
	return a.emit(service.EventReadAll, nil)
}

func (a *AckService) emit(event string, data any) error {
	a.mu.Lock()
	conn := a.conn
	a.mu.Unlock()

	if conn == nil {
		a.logger.Debug("ack dropped, no active connection", slog.String("event", event))

		return service.ErrNotConnected
	}

	return conn.Emit(event, data)
}
