package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// FeedUsecase backs the notification-list surface: paginated history plus
// read-state management kept consistent between the REST API and the
// socket-driven acknowledgments.
type FeedUsecase interface {
	// List retrieves a page of notifications, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Notification, error)

	// MarkRead marks one notification as read server-side and mirrors the
	// acknowledgment over the live connection when possible.
	MarkRead(ctx context.Context, id int64) error

	// MarkAllRead marks every notification as read server-side and mirrors
	// the bulk acknowledgment over the live connection when possible.
	MarkAllRead(ctx context.Context) error
}
