package interfaces

import (
	"context"

	"assistec_os/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// Per-user operations are owner-scoped: a notification that exists but
// belongs to another user behaves as absent.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	// CreateBatch commits all notifications in a single transactional write;
	// either every item of a transaction persists or none does.
	CreateBatch(ctx context.Context, ns []entities.Notification) error
	GetByIDForUser(ctx context.Context, userID, id string) (entities.Notification, error)
	// ListByUser returns up to limit notifications, unread first, then newest
	// first within each read state.
	ListByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, userID, id string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) error
	DeleteForUser(ctx context.Context, userID, id string) (bool, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	ExistsByDedupKey(ctx context.Context, dedupKey string) (bool, error)
}
