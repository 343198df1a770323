// Package repository defines the interfaces for the server-backed data layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"
)

// NotificationRepository is the REST notification API used by the
// notification-list surface. Its read state is kept consistent with the
// socket-driven acknowledgments but owned by the server. Failures are
// reported through the domain error taxonomy: an unknown id yields
// ErrNotificationNotFound, an unreachable API ErrFeedUnavailable, and a
// missing session ErrNotAuthenticated.
type NotificationRepository interface {
	// List retrieves a page of notifications, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Notification, error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id int64) error

	// MarkAllRead marks every notification of the current user as read.
	MarkAllRead(ctx context.Context) error
}
