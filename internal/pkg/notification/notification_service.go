package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cesarbruschetta/api-fintech/configs"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/pubsub"

	"github.com/shopspring/decimal"
)

// NotificationService pushes client-facing events to Pub/Sub after an
// origination decision or a recorded payment.
type NotificationService struct {
	pubsubPublisher pubsub.PubSubPublisherInterface
}

func NewNotificationService(pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		pubsubPublisher: pubsubPublisher,
	}
}

// NotifyClient publishes an event for the given client. Publishing is
// best effort: a disabled or unreachable broker never fails the request
// that triggered the notification.
func (h *NotificationService) NotifyClient(ctx context.Context, clientId string, event string, loanNumber string, amount decimal.Decimal) error {
	if !configs.PUBSUB_ENABLED || h.pubsubPublisher == nil {
		logger.Debug(ctx, "PubSub disabled, skipping %s notification for client %s", event, clientId)
		return nil
	}

	payload := models.ClientNotification{
		ClientId:   clientId,
		Event:      event,
		LoanNumber: loanNumber,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error(ctx, "Failed to marshal client notification: %v", err)
		return fmt.Errorf("failed to marshal client notification: %w", err)
	}

	topicName := configs.PUBSUB_TOPIC

	// Separate context with timeout so a cancelled request context does
	// not abort the publish mid flight.
	pubsubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	attributes := map[string]string{"event": event}
	messageID, err := h.pubsubPublisher.Publish(pubsubCtx, topicName, payloadBytes, attributes)
	if err != nil {
		logger.Error(ctx, "Failed to publish %s notification to topic %s: %v", event, topicName, err)
		return fmt.Errorf("failed to publish to pubsub: %w", err)
	}

	logger.Info(ctx, "Published %s notification for client %s with message ID: %s", event, clientId, messageID)
	return nil
}
