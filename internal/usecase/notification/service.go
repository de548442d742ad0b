package notification

import (
	"context"
	"errors"
	"fmt"
	domainNotification "freight-tms/internal/domain/notification"
	domainTask "freight-tms/internal/domain/task"
	"freight-tms/internal/logger"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service stores notifications and serves them back to their owners. It
// consumes task events via Publish.
type Service struct {
	notificationRepo domainNotification.Repository
	resolver         *access.Resolver
	broadcaster      domainNotification.Broadcaster
}

// NewService creates a notification service. broadcaster may be nil.
func NewService(
	notificationRepo domainNotification.Repository,
	resolver *access.Resolver,
	broadcaster domainNotification.Broadcaster,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		resolver:         resolver,
		broadcaster:      broadcaster,
	}
}

var _ domainTask.EventPublisher = (*Service)(nil)

// Publish turns a task event into a stored notification for its recipient and
// forwards it to live subscribers when a broadcaster is configured.
func (s *Service) Publish(ctx context.Context, event domainTask.Event) error {
	n := &domainNotification.Notification{
		UserID:    event.RecipientID,
		TaskID:    event.TaskID,
		Type:      domainNotification.Type(event.Kind),
		Message:   event.Message,
		IsRead:    false,
		Timestamp: event.OccurredAt,
	}
	if !n.Type.IsValid() {
		return fmt.Errorf("unknown task event kind %q", event.Kind)
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	logger.Debug("Notification stored",
		zap.String("notification_id", n.ID.String()),
		zap.String("user_id", n.UserID.String()),
		zap.String("type", string(n.Type)),
		zap.String("event", "notification_created"),
	)

	if s.broadcaster != nil {
		if err := s.broadcaster.Broadcast(ctx, n); err != nil {
			logger.Warn("Failed to broadcast notification",
				zap.String("notification_id", n.ID.String()),
				zap.Error(err),
			)
		}
	}

	return nil
}

// GetNotifications returns the caller's unread notifications.
func (s *Service) GetNotifications(ctx context.Context, caller access.Caller) ([]*NotificationResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.ListUnread(ctx, principal.ProfileID())
	if err != nil {
		return nil, err
	}

	responses := make([]*NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, ToNotificationResponse(n))
	}
	return responses, nil
}

// MarkRead fails the same way for a missing notification and for one owned by
// somebody else.
func (s *Service) MarkRead(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return err
	}

	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domainNotification.ErrNotificationNotFound) {
		return err
	}
	if n == nil || n.UserID != principal.ProfileID() {
		return appErrors.NewAppError("NOT_FOUND", "Notification not found or unauthorized",
			domainNotification.ErrNotificationNotFound)
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return err
	}

	logger.Debug("Notification marked as read",
		zap.String("notification_id", id.String()),
		zap.String("event", "notification_read"),
	)
	return nil
}
