package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (primitive.ObjectID, error)
	FindForUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Notification, int64, error)
	CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error)
	// MarkRead flips the read flag; scoped to the owning user, returns false
	// when the notification does not exist or belongs to someone else.
	MarkRead(ctx context.Context, notificationID, userID primitive.ObjectID) (bool, error)
	MarkAllRead(ctx context.Context, userID primitive.ObjectID) error
}

// Notifier is the fire-and-forget side-effect boundary of the lifecycle
// engine: failures are logged and swallowed, never surfaced to the caller.
type Notifier interface {
	Notify(ctx context.Context, userID primitive.ObjectID, notificationType, title, message string, meta models.NotificationMeta)
}

type NotificationUsecase interface {
	FindAll(ctx context.Context, session *models.Session, page, limit int) (*responses.NotificationList, *responses.Pagination, error)
	MarkRead(ctx context.Context, session *models.Session, notificationID string) error
	MarkAllRead(ctx context.Context, session *models.Session) error
}
