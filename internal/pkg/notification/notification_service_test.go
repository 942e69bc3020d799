package notification

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cesarbruschetta/api-fintech/configs"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, data []byte, attributes map[string]string) (string, error) {
	args := m.Called(ctx, topic, data, attributes)
	return args.String(0), args.Error(1)
}

func (m *MockPublisher) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestNotifyClientPublishesPayload(t *testing.T) {
	configs.PUBSUB_ENABLED = true
	defer func() { configs.PUBSUB_ENABLED = false }()

	mockPublisher := new(MockPublisher)
	service := NewNotificationService(mockPublisher)

	var captured []byte
	mockPublisher.On("Publish", mock.Anything, configs.PUBSUB_TOPIC, mock.Anything, map[string]string{"event": consts.NotificationLoanApproved}).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).([]byte)
		}).
		Return("msg-1", nil)

	err := service.NotifyClient(context.Background(), "client-1", consts.NotificationLoanApproved, "000-0000-0000-0001", decimal.RequireFromString("1000"))

	assert.NoError(t, err)
	mockPublisher.AssertExpectations(t)

	var payload models.ClientNotification
	assert.NoError(t, json.Unmarshal(captured, &payload))
	assert.Equal(t, "client-1", payload.ClientId)
	assert.Equal(t, consts.NotificationLoanApproved, payload.Event)
	assert.Equal(t, "000-0000-0000-0001", payload.LoanNumber)
	assert.True(t, payload.Amount.Equal(decimal.RequireFromString("1000")))
}

func TestNotifyClientSkipsWithoutPublisher(t *testing.T) {
	configs.PUBSUB_ENABLED = true
	defer func() { configs.PUBSUB_ENABLED = false }()

	// Startup wires a nil interface when the publisher cannot be built;
	// notifications must degrade to a no-op instead of panicking.
	service := NewNotificationService(nil)

	err := service.NotifyClient(context.Background(), "client-1", consts.NotificationLoanApproved, "000-0000-0000-0001", decimal.RequireFromString("1000"))

	assert.NoError(t, err)
}

func TestNotifyClientSkipsWhenDisabled(t *testing.T) {
	configs.PUBSUB_ENABLED = false

	mockPublisher := new(MockPublisher)
	service := NewNotificationService(mockPublisher)

	err := service.NotifyClient(context.Background(), "client-1", consts.NotificationPaymentReceived, "000-0000-0000-0001", decimal.RequireFromString("85.60"))

	assert.NoError(t, err)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
