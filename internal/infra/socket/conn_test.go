package socket

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"beacon/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func testOptions() Options {
	return Options{
		ReconnectAttempts: 3,
		ReconnectDelay:    5 * time.Millisecond,
		HandshakeTimeout:  time.Second,
		WriteTimeout:      time.Second,
		PingInterval:      time.Minute,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestConn_ReceivesEventFrames(t *testing.T) {
	frames := make(chan string, 4)
	connected := make(chan struct{}, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer ws.Close()

		require.NoError(t, ws.WriteMessage(websocket.TextMessage,
			[]byte(`{"event":"notification","data":{"id":7,"title":"hello"}}`)))
		// Garbage and empty-event frames must be dropped without dispatch.
		require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`not json`)))
		require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"data":{}}`)))
		require.NoError(t, ws.WriteMessage(websocket.TextMessage,
			[]byte(`{"event":"notification","data":{"id":8,"title":"again"}}`)))

		// Hold the connection open until the client leaves.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	conn := newConn(wsURL(srv), testOptions(), service.ConnHandlers{
		OnConnect: func() {
			select {
			case connected <- struct{}{}:
			default:
			}
		},
		OnEvent: func(event string, data json.RawMessage) {
			frames <- event + ":" + string(data)
		},
	}, testLogger())
	go conn.run()
	defer conn.Close()

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("connection never established")
	}

	var got []string
	for len(got) < 2 {
		select {
		case f := <-frames:
			got = append(got, f)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d frames", len(got))
		}
	}

	assert.Contains(t, got[0], `"id":7`)
	assert.Contains(t, got[1], `"id":8`)
}

func TestConn_EmitWritesFrameToWire(t *testing.T) {
	received := make(chan frame, 1)
	connected := make(chan struct{}, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer ws.Close()

		_, msg, err := ws.ReadMessage()
		if err != nil {
			return
		}
		var f frame
		require.NoError(t, json.Unmarshal(msg, &f))
		received <- f
	}))
	defer srv.Close()

	conn := newConn(wsURL(srv), testOptions(), service.ConnHandlers{
		OnConnect: func() {
			select {
			case connected <- struct{}{}:
			default:
			}
		},
	}, testLogger())
	go conn.run()
	defer conn.Close()

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("connection never established")
	}

	require.NoError(t, conn.Emit(service.EventRead, 42))

	select {
	case f := <-received:
		assert.Equal(t, service.EventRead, f.Event)
		assert.JSONEq(t, "42", string(f.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the frame")
	}
}

func TestConn_EmitWhileDisconnectedIsDropped(t *testing.T) {
	conn := newConn("ws://127.0.0.1:1/ws", testOptions(), service.ConnHandlers{}, testLogger())
	// Never started; the connection is down by definition.

	err := conn.Emit(service.EventRead, 1)
	assert.ErrorIs(t, err, service.ErrNotConnected)
}

func TestConn_ReconnectBudgetIsBounded(t *testing.T) {
	var dialFailures atomic.Int32
	exhausted := make(chan struct{}, 1)

	// Nothing listens on this address, so every dial fails.
	conn := newConn("ws://127.0.0.1:1/ws", testOptions(), service.ConnHandlers{
		OnError: func(err error) {
			if assert.Error(t, err) && err == ErrRetriesExhausted {
				select {
				case exhausted <- struct{}{}:
				default:
				}

				return
			}
			dialFailures.Add(1)
		},
	}, testLogger())
	go conn.run()
	defer conn.Close()

	select {
	case <-exhausted:
	case <-time.After(2 * time.Second):
		t.Fatal("retry budget never exhausted")
	}

	assert.Equal(t, int32(3), dialFailures.Load())

	// No further attempts once the budget is spent.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(3), dialFailures.Load())
}

func TestConn_ExhaustionReportsDisconnect(t *testing.T) {
	disconnected := make(chan error, 1)

	// Nothing listens on this address; the connection never establishes
	// and the budget runs out. The consumer must still see the channel go
	// down, not just the error stream.
	conn := newConn("ws://127.0.0.1:1/ws", testOptions(), service.ConnHandlers{
		OnDisconnect: func(err error) {
			select {
			case disconnected <- err:
			default:
			}
		},
	}, testLogger())
	go conn.run()
	defer conn.Close()

	select {
	case err := <-disconnected:
		assert.ErrorIs(t, err, ErrRetriesExhausted)
	case <-time.After(2 * time.Second):
		t.Fatal("exhaustion never reported as a disconnect")
	}
}

func TestConn_ReportsDisconnectAndReconnects(t *testing.T) {
	var serverConns atomic.Int32
	disconnected := make(chan struct{}, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		if serverConns.Add(1) == 1 {
			// Drop the first connection immediately to force a reconnect.
			ws.Close()

			return
		}

		defer ws.Close()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	conn := newConn(wsURL(srv), testOptions(), service.ConnHandlers{
		OnDisconnect: func(err error) {
			select {
			case disconnected <- struct{}{}:
			default:
			}
		},
	}, testLogger())
	go conn.run()
	defer conn.Close()

	select {
	case <-disconnected:
	case <-time.After(2 * time.Second):
		t.Fatal("first disconnect never reported")
	}

	require.Eventually(t, func() bool {
		return serverConns.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond, "transport never redialed")
}
