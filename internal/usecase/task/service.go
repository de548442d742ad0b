package task

import (
	"context"
	domainProfile "freight-tms/internal/domain/profile"
	domainTask "freight-tms/internal/domain/task"
	"freight-tms/internal/logger"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const assignedMessage = "You have been assigned a new task"

// Service implements the task assignment workflow. Notification side effects
// leave through the EventPublisher.
type Service struct {
	taskRepo    domainTask.Repository
	profileRepo domainProfile.Repository
	resolver    *access.Resolver
	publisher   domainTask.EventPublisher
	now         func() time.Time
}

func NewService(
	taskRepo domainTask.Repository,
	profileRepo domainProfile.Repository,
	resolver *access.Resolver,
	publisher domainTask.EventPublisher,
) *Service {
	return &Service{
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
		resolver:    resolver,
		publisher:   publisher,
		now:         time.Now,
	}
}

// CreateTask lets any profile assign a task to any other profile.
func (s *Service) CreateTask(ctx context.Context, caller access.Caller, req *CreateTaskRequest) (*TaskResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	if _, err := s.profileRepo.GetByID(ctx, req.AssigneeID); err != nil {
		return nil, err
	}

	now := s.now()
	t := &domainTask.Task{
		Title:       utils.SanitizeString(req.Title),
		Description: utils.SanitizeText(req.Description),
		Priority:    req.Priority,
		Status:      domainTask.StatusAssigned,
		AssignerID:  principal.ProfileID(),
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		StartTime:   now,
		IsRead:      false,
	}

	if err := s.taskRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("Task created successfully",
		zap.String("task_id", t.ID.String()),
		zap.String("assigner_id", t.AssignerID.String()),
		zap.String("assignee_id", t.AssigneeID.String()),
		zap.String("priority", string(t.Priority)),
		zap.String("event", "task_created"),
	)

	s.emit(ctx, domainTask.Event{
		Kind:        domainTask.EventAssigned,
		TaskID:      t.ID,
		RecipientID: t.AssigneeID,
		Message:     assignedMessage,
		OccurredAt:  now,
	})

	return ToTaskResponse(t), nil
}

// UpdateTaskStatus is restricted to the assignee and follows the
// Assigned -> Pending -> Completed graph, with Cancelled reachable from both
// open states.
func (s *Service) UpdateTaskStatus(ctx context.Context, caller access.Caller, taskID uuid.UUID, req *UpdateStatusRequest) (*TaskResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid status", err)
	}

	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if t.AssigneeID != principal.ProfileID() {
		logger.Warn("Task status change by non-assignee",
			zap.String("task_id", t.ID.String()),
			zap.String("profile_id", principal.ProfileID().String()),
			zap.String("event", "task_status_denied"),
		)
		return nil, appErrors.Forbidden("Not authorized to update this task")
	}

	if err := ValidateStatusTransition(t.Status, req.Status); err != nil {
		return nil, err
	}

	now := s.now()
	var completionTime *time.Time
	if req.Status == domainTask.StatusCompleted {
		completed := now
		if completed.Before(t.StartTime) {
			completed = t.StartTime
		}
		completionTime = &completed
	}

	if err := s.taskRepo.UpdateStatus(ctx, t.ID, req.Status, completionTime); err != nil {
		return nil, err
	}

	previous := t.Status
	t.Status = req.Status
	if completionTime != nil {
		t.CompletionTime = completionTime
	}

	logger.Info("Task status updated",
		zap.String("task_id", t.ID.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(t.Status)),
		zap.String("event", "task_status_updated"),
	)

	s.emit(ctx, domainTask.Event{
		Kind:        domainTask.EventForStatus(t.Status),
		TaskID:      t.ID,
		RecipientID: t.AssignerID,
		Message:     statusMessage(t.Status),
		OccurredAt:  now,
	})

	return ToTaskResponse(t), nil
}

// MarkTaskRead clears the unread flag. Only the assignee can do it.
func (s *Service) MarkTaskRead(ctx context.Context, caller access.Caller, taskID uuid.UUID) error {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return err
	}

	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if t.AssigneeID != principal.ProfileID() {
		return appErrors.Forbidden("Not authorized to update this task")
	}

	return s.taskRepo.MarkRead(ctx, taskID)
}

// GetMyTasks lists tasks assigned to the caller.
func (s *Service) GetMyTasks(ctx context.Context, caller access.Caller, req *ListTasksRequest) ([]*TaskResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	profileID := principal.ProfileID()
	return s.list(ctx, &domainTask.Filter{AssigneeID: &profileID}, req)
}

// GetAssignedTasks lists tasks the caller handed out.
func (s *Service) GetAssignedTasks(ctx context.Context, caller access.Caller, req *ListTasksRequest) ([]*TaskResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	profileID := principal.ProfileID()
	return s.list(ctx, &domainTask.Filter{AssignerID: &profileID}, req)
}

func (s *Service) list(ctx context.Context, filter *domainTask.Filter, req *ListTasksRequest) ([]*TaskResponse, error) {
	if req != nil {
		if err := utils.ValidateStruct(req); err != nil {
			return nil, appErrors.Validation("Invalid filter", err)
		}
		filter.Status = req.Status
	}

	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToTaskResponses(tasks), nil
}

func (s *Service) GetTaskMetrics(ctx context.Context, caller access.Caller) (*MetricsResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	profileID := principal.ProfileID()
	tasks, err := s.taskRepo.List(ctx, &domainTask.Filter{AssigneeID: &profileID})
	if err != nil {
		return nil, err
	}

	return ComputeMetrics(tasks), nil
}

// ComputeMetrics reduces the caller's assigned tasks to dashboard counters.
func ComputeMetrics(tasks []*domainTask.Task) *MetricsResponse {
	m := &MetricsResponse{}
	var timed int
	var total time.Duration

	for _, t := range tasks {
		switch t.Status {
		case domainTask.StatusAssigned:
			m.Incoming++
			m.Open++
		case domainTask.StatusPending:
			m.Open++
		case domainTask.StatusCompleted:
			m.Completed++
			if t.CompletionTime != nil {
				timed++
				total += t.CompletionTime.Sub(t.StartTime)
			}
		case domainTask.StatusCancelled:
		}
		if t.Priority == domainTask.PriorityEmergency {
			m.Emergency++
		}
	}

	if timed > 0 {
		m.AverageCompletionTimeMs = float64(total.Milliseconds()) / float64(timed)
	}
	return m
}

// emit never fails the calling mutation; the task change is already stored.
func (s *Service) emit(ctx context.Context, event domainTask.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("Failed to publish task event",
			zap.String("task_id", event.TaskID.String()),
			zap.String("kind", string(event.Kind)),
			zap.Error(err),
		)
	}
}
