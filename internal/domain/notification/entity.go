package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeAssigned  Type = "assigned"
	TypeAccepted  Type = "accepted"
	TypeDeclined  Type = "declined"
	TypeCompleted Type = "completed"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeAssigned, TypeAccepted, TypeDeclined, TypeCompleted:
		return true
	}
	return false
}

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TaskID    uuid.UUID
	Type      Type
	Message   string
	IsRead    bool
	Timestamp time.Time
}
