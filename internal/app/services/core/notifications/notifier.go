package notifications

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// notificationEvent is the payload published to the notification queue for
// downstream delivery channels (email, push).
type notificationEvent struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

type RabbitMQNotifier struct {
	repository contracts.NotificationRepository
	clock      contracts.Clock
	ch         *amqp.Channel
	queueName  string
	log        *zap.Logger
	mu         sync.Mutex
}

// NewRabbitMQNotifier declares the durable notification queue and returns the
// notifier. A nil connection disables publishing but keeps the Mongo insert,
// so notification history survives a broker outage.
func NewRabbitMQNotifier(
	repository contracts.NotificationRepository,
	clock contracts.Clock,
	conn *amqp.Connection,
	queueName string,
	log *zap.Logger,
) (contracts.Notifier, error) {
	notifier := &RabbitMQNotifier{
		repository: repository,
		clock:      clock,
		queueName:  queueName,
		log:        log,
	}
	if conn == nil {
		return notifier, nil
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}
	notifier.ch = ch
	return notifier, nil
}

// Notify persists the notification and publishes it to the queue. Errors in
// either step are logged and swallowed: a notification failure must never roll
// back or fail the lifecycle transition that triggered it.
func (n *RabbitMQNotifier) Notify(ctx context.Context, userID primitive.ObjectID, notificationType, title, message string, meta models.NotificationMeta) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := n.clock.Now()

	notification := &models.Notification{
		User:    userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
		IsRead:  false,
		Meta:    meta,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	notificationID, err := n.repository.CreateNotification(ctx, notification)
	if err != nil {
		n.log.Error("failed to persist notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationTypeKey, notificationType),
			zap.String(constvars.LoggingUserIDKey, userID.Hex()),
			zap.Error(err),
		)
		return
	}

	if n.ch == nil {
		return
	}

	event := notificationEvent{
		NotificationID: notificationID.Hex(),
		UserID:         userID.Hex(),
		Type:           notificationType,
		Title:          title,
		Message:        message,
		CreatedAt:      now,
	}
	body, err := json.Marshal(event)
	if err != nil {
		n.log.Error("failed to marshal notification event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	err = n.ch.PublishWithContext(ctx, "", n.queueName, false, false, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		n.log.Error("failed to publish notification event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationTypeKey, notificationType),
			zap.Error(err),
		)
	}
}
