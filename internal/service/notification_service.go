package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/foodyy-service/internal/events"
	"github.com/spec-kit/foodyy-service/internal/notify"
)

// NotificationService turns domain events into outbound customer mail.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     notify.Mailer
	logger     *zap.Logger
}

// NewNotificationService builds the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer notify.Mailer, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, mailer: mailer, logger: logger}
}

// RegisterHandlers subscribes the mail handlers to the dispatcher.
func (s *NotificationService) RegisterHandlers() {
	s.dispatcher.Subscribe(events.EventCustomerRegistered, s.onCustomerRegistered)
	s.dispatcher.Subscribe(events.EventOrderPlaced, s.onOrderPlaced)
	s.dispatcher.Subscribe(events.EventOrderStatusChanged, s.onOrderStatusChanged)
}

func (s *NotificationService) onCustomerRegistered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.CustomerRegisteredPayload)
	if !ok {
		s.logger.Warn("unexpected payload for customer_registered", zap.String("event_id", event.ID))
		return nil
	}
	return s.mailer.Send(ctx, notify.Mail{
		To:      payload.Email,
		Subject: "Welcome to Foodyy",
		Body:    fmt.Sprintf("Hi %s, your account is ready. Happy ordering!", payload.Name),
	})
}

func (s *NotificationService) onOrderPlaced(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderPlacedPayload)
	if !ok {
		s.logger.Warn("unexpected payload for order_placed", zap.String("event_id", event.ID))
		return nil
	}
	return s.mailer.Send(ctx, notify.Mail{
		To:      payload.Email,
		Subject: fmt.Sprintf("Order %s confirmed", payload.OrderID),
		Body:    fmt.Sprintf("Your order %s for %.2f has been placed.", payload.OrderID, payload.TotalAmount),
	})
}

func (s *NotificationService) onOrderStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderStatusChangedPayload)
	if !ok {
		s.logger.Warn("unexpected payload for order_status_changed", zap.String("event_id", event.ID))
		return nil
	}
	return s.mailer.Send(ctx, notify.Mail{
		To:      payload.Email,
		Subject: fmt.Sprintf("Order %s update", payload.OrderID),
		Body:    fmt.Sprintf("Your order %s is now %s.", payload.OrderID, payload.NewStatus),
	})
}
