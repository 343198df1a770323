// Package impl contains the use case implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// NotifierParams holds dependencies for the notifier service
type NotifierParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Renderer  service.Renderer
	Navigator service.Navigator
	Acks      service.AckPublisher
}

// notifierService drains an ordered queue of notification events into one
// visible presentation at a time. A single drain goroutine runs while the
// queue is non-empty, guarded by the draining flag; every other method only
// mutates state under the mutex and wakes the loop.
type notifierService struct {
	dwell     time.Duration
	dedupe    bool
	logger    *slog.Logger
	renderer  service.Renderer
	navigator service.Navigator
	acks      service.AckPublisher
	validate  *validator.Validate

	mu         sync.Mutex
	queue      []*entity.Notification
	draining   bool
	active     *entity.Notification
	authed     bool
	inAuthFlow bool
	seen       map[int64]struct{}
}

// NewNotifierService creates the serial delivery pipeline. The route gate
// starts closed: the client boots into the pre-authentication flow.
func NewNotifierService(params NotifierParams) usecase.NotifierUsecase {
	return &notifierService{
		dwell:      params.Config.Presenter.DwellTime,
		dedupe:     params.Config.Presenter.Dedupe,
		logger:     params.Logger,
		renderer:   params.Renderer,
		navigator:  params.Navigator,
		acks:       params.Acks,
		validate:   validator.New(),
		inAuthFlow: true,
		seen:       make(map[int64]struct{}),
	}
}

// HandleFrame classifies an inbound frame and appends well-formed
// notification events to the queue tail.
func (s *notifierService) HandleFrame(event string, data json.RawMessage) {
	if event != service.EventNotification {
		s.logger.Debug("ignoring frame", slog.String("event", event))

		return
	}

	var n entity.Notification
	if err := json.Unmarshal(data, &n); err != nil {
		s.logger.Warn("dropping undecodable notification frame", slog.Any("error", err))

		return
	}

	// Frames missing id or title are dropped rather than presented.
	if err := s.validate.Struct(&n); err != nil {
		s.logger.Warn("dropping malformed notification frame",
			slog.Int64("id", n.ID),
			slog.Any("error", err),
		)

		return
	}

	s.enqueue(&n)
}

func (s *notifierService) enqueue(n *entity.Notification) {
	s.mu.Lock()
	if s.dedupe {
		if _, dup := s.seen[n.ID]; dup {
			s.mu.Unlock()
			s.logger.Debug("dropping duplicate notification", slog.Int64("id", n.ID))

			return
		}
		s.seen[n.ID] = struct{}{}
	}
	s.queue = append(s.queue, n)
	s.mu.Unlock()

	s.wake()
}

// wake (re)starts the drain loop when the queue is non-empty. When the
// gating conditions do not hold, the entire pending queue is discarded
// rather than held for later: a burst of stale toasts right after login is
// worse than losing best-effort signals.
func (s *notifierService) wake() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return
	}
	if !s.gateOpen() {
		s.discardLocked("gating conditions not met")

		return
	}
	if s.draining {
		return
	}
	s.draining = true

	go s.drain()
}

// drain presents queued events one at a time, in strict arrival order,
// holding each for the dwell interval. It exits when the queue empties or
// the gate closes.
func (s *notifierService) drain() {
	for {
		s.mu.Lock()
		if !s.gateOpen() {
			s.discardLocked("gate closed during drain")
			s.draining = false
			s.mu.Unlock()

			return
		}
		if len(s.queue) == 0 {
			s.draining = false
			s.mu.Unlock()

			return
		}
		head := s.queue[0]
		s.active = head
		s.mu.Unlock()

		s.renderer.Show(head)
		<-time.After(s.dwell)
		s.renderer.Hide()

		s.mu.Lock()
		if len(s.queue) > 0 && s.queue[0] == head {
			s.queue = s.queue[1:]
		}
		s.active = nil
		s.mu.Unlock()
	}
}

// TapActive routes a tap on the visible notification: read ack first, then
// navigation. Taps on targetless notifications do nothing; timer expiry
// never reaches this path, so it never acks.
func (s *notifierService) TapActive(ctx context.Context) {
	s.mu.Lock()
	n := s.active
	s.mu.Unlock()

	if n == nil || n.NavigateTo == "" {
		return
	}

	n.IsRead = true
	if err := s.acks.PublishRead(n.ID); err != nil {
		s.logger.Debug("read ack dropped", slog.Int64("id", n.ID), slog.Any("error", err))
	}

	if err := s.navigator.Push(n.NavigateTo); err != nil {
		s.logger.Warn("navigation failed",
			slog.String("route", n.NavigateTo),
			slog.Any("error", err),
		)
	}
}

// SetAuthenticated flips the credential gate. Teardown discards all queued
// state synchronously; the visible item, if any, finishes its own dwell but
// nothing further begins presenting.
func (s *notifierService) SetAuthenticated(authed bool) {
	s.mu.Lock()
	s.authed = authed
	if !authed {
		s.discardLocked("logout")
		s.seen = make(map[int64]struct{})
	}
	s.mu.Unlock()
}

// SetRouteGate marks whether the active navigation context is within the
// pre-authentication flow.
func (s *notifierService) SetRouteGate(inAuthFlow bool) {
	s.mu.Lock()
	s.inAuthFlow = inAuthFlow
	s.mu.Unlock()
}

// QueueDepth reports the number of pending events.
func (s *notifierService) QueueDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.queue)
}

// Active returns the currently presented event, or nil.
func (s *notifierService) Active() *entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// gateOpen reports whether presentation may begin. Callers hold s.mu.
func (s *notifierService) gateOpen() bool {
	return s.authed && !s.inAuthFlow
}

// discardLocked drops all pending events. Callers hold s.mu.
func (s *notifierService) discardLocked(reason string) {
	if len(s.queue) == 0 {
		return
	}
	s.logger.Debug("discarding queued notifications",
		slog.Int("count", len(s.queue)),
		slog.String("reason", reason),
	)
	s.queue = nil
}
