package impl

import (
	"context"
	"log/slog"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"go.uber.org/fx"
)

// FeedParams holds dependencies for the feed service
type FeedParams struct {
	fx.In

	Logger *slog.Logger
	Repo   repository.NotificationRepository
	Acks   service.AckPublisher
}

// feedService bridges the REST notification feed and the socket read state.
// The REST call is the durable write; the socket ack is a best-effort
// mirror so other connected surfaces update immediately.
type feedService struct {
	logger *slog.Logger
	repo   repository.NotificationRepository
	acks   service.AckPublisher
}

// NewFeedService creates the notification feed use case.
func NewFeedService(params FeedParams) usecase.FeedUsecase {
	return &feedService{
		logger: params.Logger,
		repo:   params.Repo,
		acks:   params.Acks,
	}
}

// List retrieves a page of notifications, newest first.
func (s *feedService) List(ctx context.Context, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.List(ctx, limit, offset)
}

// MarkRead marks one notification as read.
func (s *feedService) MarkRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return err
	}

	if err := s.acks.PublishRead(id); err != nil {
		s.logger.Debug("read ack not mirrored", slog.Int64("id", id), slog.Any("error", err))
	}

	return nil
}

// MarkAllRead marks every notification as read.
func (s *feedService) MarkAllRead(ctx context.Context) error {
	if err := s.repo.MarkAllRead(ctx); err != nil {
		return err
	}

	if err := s.acks.PublishReadAll(); err != nil {
		s.logger.Debug("readAll ack not mirrored", slog.Any("error", err))
	}

	return nil
}
