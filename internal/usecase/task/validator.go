package task

import (
	"fmt"
	domainTask "freight-tms/internal/domain/task"
	appErrors "freight-tms/pkg/errors"
	"strings"
)

var validTransitions = map[domainTask.Status][]domainTask.Status{
	domainTask.StatusAssigned: {
		domainTask.StatusPending,
		domainTask.StatusCancelled,
	},
	domainTask.StatusPending: {
		domainTask.StatusCompleted,
		domainTask.StatusCancelled,
	},
}

// ValidateStatusTransition checks if status transition is allowed
func ValidateStatusTransition(currentStatus, newStatus domainTask.Status) error {
	if currentStatus.IsTerminal() {
		return fmt.Errorf("%w: task is already %s",
			domainTask.ErrInvalidStatusTransition, currentStatus)
	}

	allowedStatuses, exists := validTransitions[currentStatus]
	if !exists {
		return appErrors.Validation(fmt.Sprintf("Unknown current status: %s", currentStatus), nil)
	}

	for _, allowed := range allowedStatuses {
		if newStatus == allowed {
			return nil
		}
	}

	return fmt.Errorf("%w: cannot move task from %s to %s",
		domainTask.ErrInvalidStatusTransition, currentStatus, newStatus)
}

// statusMessage is the text sent to the assigner after a status change.
func statusMessage(status domainTask.Status) string {
	return fmt.Sprintf("Task has been %s", strings.ToLower(string(status)))
}
