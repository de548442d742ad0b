package task

import (
	"errors"
	"testing"

	domainTask "freight-tms/internal/domain/task"
	appErrors "freight-tms/pkg/errors"
)

func TestValidateStatusTransition_TerminalStatesAreFinal(t *testing.T) {
	all := []domainTask.Status{
		domainTask.StatusAssigned,
		domainTask.StatusPending,
		domainTask.StatusCompleted,
		domainTask.StatusCancelled,
	}

	for _, from := range []domainTask.Status{domainTask.StatusCompleted, domainTask.StatusCancelled} {
		if !from.IsTerminal() {
			t.Fatalf("%s should be terminal", from)
		}
		for _, to := range all {
			err := ValidateStatusTransition(from, to)
			if !errors.Is(err, domainTask.ErrInvalidStatusTransition) || !errors.Is(err, appErrors.ErrInvalidState) {
				t.Errorf("%s -> %s: expected invalid transition, got %v", from, to, err)
			}
		}
	}
}

func TestValidateStatusTransition_OpenStates(t *testing.T) {
	tests := []struct {
		from, to domainTask.Status
		ok       bool
	}{
		{domainTask.StatusAssigned, domainTask.StatusPending, true},
		{domainTask.StatusAssigned, domainTask.StatusCancelled, true},
		{domainTask.StatusAssigned, domainTask.StatusCompleted, false},
		{domainTask.StatusAssigned, domainTask.StatusAssigned, false},
		{domainTask.StatusPending, domainTask.StatusCompleted, true},
		{domainTask.StatusPending, domainTask.StatusCancelled, true},
		{domainTask.StatusPending, domainTask.StatusAssigned, false},
	}

	for _, tt := range tests {
		if tt.from.IsTerminal() {
			t.Fatalf("%s should not be terminal", tt.from)
		}
		err := ValidateStatusTransition(tt.from, tt.to)
		if tt.ok && err != nil {
			t.Errorf("%s -> %s: expected success, got %v", tt.from, tt.to, err)
		}
		if !tt.ok && !errors.Is(err, domainTask.ErrInvalidStatusTransition) {
			t.Errorf("%s -> %s: expected invalid transition, got %v", tt.from, tt.to, err)
		}
	}
}
