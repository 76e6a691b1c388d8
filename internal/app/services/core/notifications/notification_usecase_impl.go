package notifications

import (
	"context"
	"errors"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
}

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository) contracts.NotificationUsecase {
	return &NotificationUsecase{
		NotificationRepository: notificationRepository,
	}
}

func (uc *NotificationUsecase) FindAll(ctx context.Context, session *models.Session, page, limit int) (*responses.NotificationList, *responses.Pagination, error) {
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, nil, exceptions.ErrSessionInvalid(err)
	}

	notifications, total, err := uc.NotificationRepository.FindForUser(ctx, userID, page, limit)
	if err != nil {
		return nil, nil, err
	}
	unread, err := uc.NotificationRepository.CountUnread(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	list := &responses.NotificationList{
		Notifications: make([]responses.Notification, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for i := range notifications {
		list.Notifications = append(list.Notifications, utils.MapNotificationResponse(&notifications[i]))
	}
	return list, utils.BuildPaginationResponse(total, page, limit), nil
}

func (uc *NotificationUsecase) MarkRead(ctx context.Context, session *models.Session, notificationID string) error {
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return exceptions.ErrSessionInvalid(err)
	}
	id, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return exceptions.ErrURLParamIDValidation(err, "notificationID")
	}

	matched, err := uc.NotificationRepository.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !matched {
		return exceptions.ErrNotificationNotExist(errors.New("notification missing or not owned"))
	}
	return nil
}

func (uc *NotificationUsecase) MarkAllRead(ctx context.Context, session *models.Session) error {
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return exceptions.ErrSessionInvalid(err)
	}
	return uc.NotificationRepository.MarkAllRead(ctx, userID)
}
