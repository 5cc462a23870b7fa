package usecase

import (
	"context"
	"strings"

	"jobboard-ai/internal/events"
	"jobboard-ai/internal/ws"

	"go.uber.org/zap"
)

// NotificationUsecase receives job-board lifecycle signals. The service keeps
// no interaction history; each signal is logged, published, and forgotten.
type NotificationUsecase interface {
	ProfileUpdated(ctx context.Context, userID string, updatedProfile map[string]any) error
	ApplicationReceived(ctx context.Context, applicationID, userID, jobID string) error
	JobInteraction(ctx context.Context, userID, jobID, interactionType string) error
}

type Notification struct {
	publisher events.Publisher
	logger    *zap.Logger
}

func NewNotificationUsecase(publisher events.Publisher, logger *zap.Logger) *Notification {
	return &Notification{publisher: publisher, logger: logger}
}

func (u *Notification) ProfileUpdated(ctx context.Context, userID string, updatedProfile map[string]any) error {
	if strings.TrimSpace(userID) == "" || len(updatedProfile) == 0 {
		return ErrInvalidInput
	}

	evt := events.New(events.TypeProfileUpdated)
	evt.UserID = userID
	u.dispatch(ctx, evt)
	return nil
}

func (u *Notification) ApplicationReceived(ctx context.Context, applicationID, userID, jobID string) error {
	if strings.TrimSpace(applicationID) == "" || strings.TrimSpace(userID) == "" || strings.TrimSpace(jobID) == "" {
		return ErrInvalidInput
	}

	evt := events.New(events.TypeApplicationReceived)
	evt.ApplicationID = applicationID
	evt.UserID = userID
	evt.JobID = jobID
	u.dispatch(ctx, evt)
	return nil
}

func (u *Notification) JobInteraction(ctx context.Context, userID, jobID, interactionType string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(jobID) == "" || strings.TrimSpace(interactionType) == "" {
		return ErrInvalidInput
	}

	evt := events.New(events.TypeJobInteraction)
	evt.UserID = userID
	evt.JobID = jobID
	evt.Interaction = interactionType
	u.dispatch(ctx, evt)
	return nil
}

// dispatch forwards the event downstream. Delivery failures never fail the
// acknowledgement; the notification contract is fire-and-forget.
func (u *Notification) dispatch(ctx context.Context, evt events.Event) {
	if u.logger != nil {
		u.logger.Info("notification received",
			zap.String("type", evt.Type),
			zap.String("user_id", evt.UserID),
			zap.String("job_id", evt.JobID),
		)
	}
	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, evt); err != nil && u.logger != nil {
			u.logger.Warn("event publish failed", zap.String("type", evt.Type), zap.Error(err))
		}
	}
	ws.NotifyEvent(evt)
}
