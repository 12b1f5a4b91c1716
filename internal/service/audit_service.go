package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campushub/campus-events-gateway/internal/events"
	"github.com/campushub/campus-events-gateway/internal/observability"
)

// AuditService turns auth activities into structured log lines and
// counters. It is the only subscriber the gateway ships with.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService builds the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger, metrics: metrics}
}

// RegisterHandlers subscribes the audit handler to every activity type.
func (s *AuditService) RegisterHandlers() {
	for _, activityType := range events.All() {
		s.dispatcher.Subscribe(activityType, s.handleActivity)
	}
}

func (s *AuditService) handleActivity(_ context.Context, activity events.Activity) error {
	s.metrics.RecordActivity(string(activity.Type))
	s.logger.Info("auth activity",
		zap.String("activity_id", activity.ID),
		zap.String("type", string(activity.Type)),
		zap.String("email", activity.Email),
		zap.String("detail", activity.Detail),
		zap.Time("at", activity.Timestamp),
	)
	return nil
}
