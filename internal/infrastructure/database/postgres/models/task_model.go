package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Description    string     `gorm:"type:text"`
	Priority       string     `gorm:"type:varchar(20);not null"`
	Status         string     `gorm:"type:varchar(20);not null;index"`
	AssignerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssigneeID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	DueDate        *string    `gorm:"type:varchar(10)"`
	StartTime      time.Time  `gorm:"not null"`
	CompletionTime *time.Time `gorm:"type:timestamp"`
	IsRead         bool       `gorm:"not null;default:false"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null"`
	Type      string    `gorm:"type:varchar(20);not null"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false;index"`
	Timestamp time.Time `gorm:"not null"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
