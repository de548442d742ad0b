package notification

import (
	"time"

	domainNotification "freight-tms/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"user_id"`
	TaskID    uuid.UUID               `json:"task_id"`
	Type      domainNotification.Type `json:"type"`
	Message   string                  `json:"message"`
	IsRead    bool                    `json:"is_read"`
	Timestamp time.Time               `json:"timestamp"`
}

func ToNotificationResponse(n *domainNotification.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		TaskID:    n.TaskID,
		Type:      n.Type,
		Message:   n.Message,
		IsRead:    n.IsRead,
		Timestamp: n.Timestamp,
	}
}
