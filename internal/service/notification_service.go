package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Nishukr/Urban-waste-control/internal/config"
	"github.com/Nishukr/Urban-waste-control/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventConcernRaised, n.handleConcernRaised)
	n.dispatcher.Subscribe(events.EventConcernResolved, n.handleConcernResolved)
	n.dispatcher.Subscribe(events.EventScheduleUpdated, n.handleScheduleUpdated)
	n.dispatcher.Subscribe(events.EventGarbageReported, n.handleGarbageReported)
}

func (n *NotificationService) handleConcernRaised(ctx context.Context, event events.Event) error {
	n.logger.Info("ConcernRaised", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleConcernResolved(ctx context.Context, event events.Event) error {
	n.logger.Info("ConcernResolved", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleScheduleUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("ScheduleUpdated", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleGarbageReported(ctx context.Context, event events.Event) error {
	n.logger.Info("GarbageReported", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
