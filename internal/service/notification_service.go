package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campus-kit/complaint-service/internal/events"
)

// NotificationService logs domain events as they happen. Actual delivery
// (email, push) is outside this service.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventComplaintCreated, n.handleComplaintCreated)
	n.dispatcher.Subscribe(events.EventComplaintStatusChanged, n.handleComplaintStatusChanged)
}

func (n *NotificationService) handleComplaintCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ComplaintCreated",
		zap.String("complaint_id", event.ComplaintID),
		zap.String("actor_id", event.Actor.AccountID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleComplaintStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ComplaintStatusChanged",
		zap.String("complaint_id", event.ComplaintID),
		zap.String("actor_id", event.Actor.AccountID),
		zap.Any("payload", event.Payload))
	return nil
}
