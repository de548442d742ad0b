//go:generate mockgen -source=event.go -destination=mocks/event_mock.go -package=mocks

package task

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventAssigned  EventKind = "assigned"
	EventAccepted  EventKind = "accepted"
	EventDeclined  EventKind = "declined"
	EventCompleted EventKind = "completed"
)

// Event is emitted by the task service after a task is created or changes status.
// RecipientID is the profile that should hear about it.
type Event struct {
	Kind        EventKind
	TaskID      uuid.UUID
	RecipientID uuid.UUID
	Message     string
	OccurredAt  time.Time
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// EventForStatus maps a new task status to the event sent to the assigner.
func EventForStatus(status Status) EventKind {
	switch status {
	case StatusCancelled:
		return EventDeclined
	case StatusCompleted:
		return EventCompleted
	case StatusAssigned, StatusPending:
		return EventAccepted
	}
	return EventAccepted
}
