package notifications

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeNotificationRepo struct {
	notifications map[primitive.ObjectID]*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[primitive.ObjectID]*models.Notification)}
}

func (f *fakeNotificationRepo) CreateNotification(ctx context.Context, notification *models.Notification) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *notification
	stored.ID = id
	f.notifications[id] = &stored
	return id, nil
}

func (f *fakeNotificationRepo) FindForUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Notification, int64, error) {
	result := make([]models.Notification, 0)
	for _, notification := range f.notifications {
		if notification.User == userID {
			result = append(result, *notification)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var count int64
	for _, notification := range f.notifications {
		if notification.User == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, notificationID, userID primitive.ObjectID) (bool, error) {
	notification, ok := f.notifications[notificationID]
	if !ok || notification.User != userID {
		return false, nil
	}
	notification.IsRead = true
	return true, nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	for _, notification := range f.notifications {
		if notification.User == userID {
			notification.IsRead = true
		}
	}
	return nil
}

func seedNotification(repo *fakeNotificationRepo, userID primitive.ObjectID) primitive.ObjectID {
	id, _ := repo.CreateNotification(context.Background(), &models.Notification{
		User:    userID,
		Type:    "appointment_request",
		Title:   "New appointment request",
		Message: "Pat requested 10:00-10:30",
		TimeModel: models.TimeModel{
			CreatedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		},
	})
	return id
}

func TestNotificationFindAll(t *testing.T) {
	repo := newFakeNotificationRepo()
	userID := primitive.NewObjectID()
	seedNotification(repo, userID)
	seedNotification(repo, userID)
	seedNotification(repo, primitive.NewObjectID())

	usecase := NewNotificationUsecase(repo)
	session := &models.Session{UserID: userID.Hex()}

	list, pagination, err := usecase.FindAll(context.Background(), session, 1, 20)
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 2)
	assert.Equal(t, int64(2), list.UnreadCount)
	assert.Equal(t, int64(2), pagination.Total)
}

func TestNotificationMarkRead(t *testing.T) {
	t.Run("own notification", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		userID := primitive.NewObjectID()
		id := seedNotification(repo, userID)

		usecase := NewNotificationUsecase(repo)
		err := usecase.MarkRead(context.Background(), &models.Session{UserID: userID.Hex()}, id.Hex())
		require.NoError(t, err)
		assert.True(t, repo.notifications[id].IsRead)
	})

	t.Run("someone else's notification reads as missing", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		id := seedNotification(repo, primitive.NewObjectID())

		usecase := NewNotificationUsecase(repo)
		err := usecase.MarkRead(context.Background(), &models.Session{UserID: primitive.NewObjectID().Hex()}, id.Hex())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
	})
}

func TestNotificationMarkAllRead(t *testing.T) {
	repo := newFakeNotificationRepo()
	userID := primitive.NewObjectID()
	seedNotification(repo, userID)
	seedNotification(repo, userID)
	other := seedNotification(repo, primitive.NewObjectID())

	usecase := NewNotificationUsecase(repo)
	require.NoError(t, usecase.MarkAllRead(context.Background(), &models.Session{UserID: userID.Hex()}))

	count, err := repo.CountUnread(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.False(t, repo.notifications[other].IsRead)
}
