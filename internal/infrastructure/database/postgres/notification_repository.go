package postgres

import (
	"context"
	"errors"
	"fmt"
	domainNotification "freight-tms/internal/domain/notification"
	"freight-tms/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *DB
}

func NewNotificationRepository(db *DB) domainNotification.Repository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domainNotification.Notification) error {
	n.ID = uuid.New()
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}

	m := &models.NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		TaskID:    n.TaskID,
		Type:      string(n.Type),
		Message:   n.Message,
		IsRead:    n.IsRead,
		Timestamp: n.Timestamp,
	}
	if err := r.db.DB.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domainNotification.Notification, error) {
	var m models.NotificationModel
	err := r.db.DB.WithContext(ctx).First(&m, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainNotification.ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return toNotificationEntity(&m), nil
}

func (r *NotificationRepository) ListUnread(ctx context.Context, userID uuid.UUID) ([]*domainNotification.Notification, error) {
	var rows []models.NotificationModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ? AND is_read = false", userID).
		Order("timestamp DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]*domainNotification.Notification, len(rows))
	for i := range rows {
		out[i] = toNotificationEntity(&rows[i])
	}
	return out, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainNotification.ErrNotificationNotFound
	}
	return nil
}

func toNotificationEntity(m *models.NotificationModel) *domainNotification.Notification {
	return &domainNotification.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		TaskID:    m.TaskID,
		Type:      domainNotification.Type(m.Type),
		Message:   m.Message,
		IsRead:    m.IsRead,
		Timestamp: m.Timestamp,
	}
}
