// Package socket implements the real-time notification transport on top of
// a websocket connection. The connection owns its own bounded reconnection
// policy; consumers only observe connect/disconnect transitions through the
// handler slots bound at dial time.
package socket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"beacon/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// ErrRetriesExhausted is reported through OnError once the reconnection
// budget is spent. The connection stays down until a new explicit dial.
var ErrRetriesExhausted = errors.New("socket: reconnect attempts exhausted")

const sendBufferSize = 64

// frame is the wire envelope carried in both directions.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Options tunes a single connection.
type Options struct {
	ReconnectAttempts int
	ReconnectDelay    time.Duration
	HandshakeTimeout  time.Duration
	WriteTimeout      time.Duration
	PingInterval      time.Duration
}

// Conn is a websocket-backed service.Conn. One goroutine runs the
// connect/read/reconnect loop; a second drains the send queue. All handler
// callbacks fire from the run loop, one at a time.
type Conn struct {
	url      string
	opts     Options
	logger   *slog.Logger
	handlers service.ConnHandlers

	mu        sync.Mutex
	connected bool

	sendCh    chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newConn(url string, opts Options, handlers service.ConnHandlers, logger *slog.Logger) *Conn {
	return &Conn{
		url:      url,
		opts:     opts,
		logger:   logger,
		handlers: handlers,
		sendCh:   make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
	}
}

// Emit queues an outbound frame, fire-and-forget. Frames emitted while
// disconnected (or while the send queue is full) are dropped with
// service.ErrNotConnected.
func (c *Conn) Emit(event string, data any) error {
	c.mu.Lock()
	connected := c.connected
	c.mu.Unlock()

	if !connected {
		return service.ErrNotConnected
	}

	f := frame{Event: event}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return errors.Wrap(err, "marshal frame data")
		}
		f.Data = raw
	}

	payload, err := json.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "marshal frame")
	}

	select {
	case c.sendCh <- payload:
		return nil
	case <-c.done:
		return service.ErrNotConnected
	default:
		return service.ErrNotConnected
	}
}

// Close tears the connection down and cancels any pending reconnection
// timers. It is safe to call more than once.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})

	return nil
}

// run drives the connect/read/reconnect loop until Close or until the
// reconnection budget is spent.
func (c *Conn) run() {
	attempt := 0
	delay := c.opts.ReconnectDelay

	for {
		select {
		case <-c.done:
			return
		default:
		}

		ws, err := c.dialOnce()
		if err != nil {
			attempt++
			c.logger.Warn("socket connect failed",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", c.opts.ReconnectAttempts),
				slog.Any("error", err),
			)
			if c.handlers.OnError != nil {
				c.handlers.OnError(err)
			}

			if attempt >= c.opts.ReconnectAttempts {
				c.logger.Warn("socket reconnect attempts exhausted")
				if c.handlers.OnError != nil {
					c.handlers.OnError(ErrRetriesExhausted)
				}
				// The channel is down for good; report it even when the
				// connection never established, so consumers do not keep
				// showing a connecting state.
				if c.handlers.OnDisconnect != nil {
					c.handlers.OnDisconnect(ErrRetriesExhausted)
				}

				return
			}

			select {
			case <-time.After(delay):
			case <-c.done:
				return
			}
			delay *= 2

			continue
		}

		// Connection established; reset the retry budget.
		attempt = 0
		delay = c.opts.ReconnectDelay

		c.setConnected(true)
		if c.handlers.OnConnect != nil {
			c.handlers.OnConnect()
		}

		writerDone := make(chan struct{})
		go c.writePump(ws, writerDone)

		readErr := c.readLoop(ws)

		c.setConnected(false)
		close(writerDone)
		_ = ws.Close()

		if c.handlers.OnDisconnect != nil {
			c.handlers.OnDisconnect(readErr)
		}

		select {
		case <-c.done:
			return
		default:
			// Dropped connection; fall through into the retry loop.
		}
	}
}

func (c *Conn) dialOnce() (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: c.opts.HandshakeTimeout}

	ws, resp, err := dialer.Dial(c.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, errors.Wrap(err, "dial websocket")
	}

	return ws, nil
}

// readLoop decodes inbound frames and dispatches them until the connection
// drops. Malformed envelopes are dropped silently.
func (c *Conn) readLoop(ws *websocket.Conn) error {
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			return errors.WithStack(err)
		}

		var f frame
		if err := json.Unmarshal(msg, &f); err != nil || f.Event == "" {
			c.logger.Debug("dropping malformed frame", slog.Int("bytes", len(msg)))

			continue
		}

		if c.handlers.OnEvent != nil {
			c.handlers.OnEvent(f.Event, f.Data)
		}
	}
}

// writePump drains the send queue onto the wire and keeps the connection
// alive with pings. It exits when the connection drops or Close is called.
func (c *Conn) writePump(ws *websocket.Conn, writerDone chan struct{}) {
	ticker := time.NewTicker(c.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case payload := <-c.sendCh:
			_ = ws.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout))
			if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Warn("socket write failed", slog.Any("error", err))

				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-writerDone:
			return
		case <-c.done:
			_ = ws.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout))
			_ = ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

			return
		}
	}
}

func (c *Conn) setConnected(connected bool) {
	c.mu.Lock()
	c.connected = connected
	c.mu.Unlock()
}
