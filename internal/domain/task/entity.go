package task

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow       Priority = "Low"
	PriorityMedium    Priority = "Medium"
	PriorityHigh      Priority = "High"
	PriorityEmergency Priority = "EMERGENCY"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

type Status string

const (
	StatusAssigned  Status = "Assigned"
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAssigned, StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled:
		return true
	case StatusAssigned, StatusPending:
		return false
	}
	return false
}

type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	Priority    Priority
	Status      Status

	AssignerID uuid.UUID
	AssigneeID uuid.UUID

	DueDate        *string
	StartTime      time.Time
	CompletionTime *time.Time
	IsRead         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
