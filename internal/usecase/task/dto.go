package task

import (
	"time"

	domainTask "freight-tms/internal/domain/task"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string              `json:"title" validate:"required,min=1,max=255"`
	Description string              `json:"description" validate:"max=5000"`
	Priority    domainTask.Priority `json:"priority" validate:"required,enum"`
	AssigneeID  uuid.UUID           `json:"assignee_id" validate:"required"`
	DueDate     *string             `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateStatusRequest struct {
	Status domainTask.Status `json:"status" validate:"required,enum,ne=Assigned"`
}

type ListTasksRequest struct {
	Status *domainTask.Status `form:"status" validate:"omitempty,enum"`
}

type TaskResponse struct {
	ID             uuid.UUID           `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Priority       domainTask.Priority `json:"priority"`
	Status         domainTask.Status   `json:"status"`
	AssignerID     uuid.UUID           `json:"assigner_id"`
	AssigneeID     uuid.UUID           `json:"assignee_id"`
	DueDate        *string             `json:"due_date,omitempty"`
	StartTime      time.Time           `json:"start_time"`
	CompletionTime *time.Time          `json:"completion_time,omitempty"`
	IsRead         bool                `json:"is_read"`
}

// MetricsResponse covers tasks assigned to the caller.
// AverageCompletionTimeMs is zero when nothing has been completed.
type MetricsResponse struct {
	Incoming                int     `json:"incoming"`
	Open                    int     `json:"open"`
	Completed               int     `json:"completed"`
	Emergency               int     `json:"emergency"`
	AverageCompletionTimeMs float64 `json:"average_completion_time_ms"`
}

func ToTaskResponse(t *domainTask.Task) *TaskResponse {
	if t == nil {
		return nil
	}
	return &TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       t.Priority,
		Status:         t.Status,
		AssignerID:     t.AssignerID,
		AssigneeID:     t.AssigneeID,
		DueDate:        t.DueDate,
		StartTime:      t.StartTime,
		CompletionTime: t.CompletionTime,
		IsRead:         t.IsRead,
	}
}

func ToTaskResponses(tasks []*domainTask.Task) []*TaskResponse {
	responses := make([]*TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, ToTaskResponse(t))
	}
	return responses
}
