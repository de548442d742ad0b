package task

import (
	"context"
	"errors"
	"testing"
	"time"

	domainProfile "freight-tms/internal/domain/profile"
	profileMocks "freight-tms/internal/domain/profile/mocks"
	domainTask "freight-tms/internal/domain/task"
	taskMocks "freight-tms/internal/domain/task/mocks"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var start = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc       *Service
	tasks     *taskMocks.MockRepository
	profiles  *profileMocks.MockRepository
	publisher *taskMocks.MockEventPublisher
	clock     time.Time
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		tasks:     taskMocks.NewMockRepository(ctrl),
		profiles:  profileMocks.NewMockRepository(ctrl),
		publisher: taskMocks.NewMockEventPublisher(ctrl),
		clock:     start,
	}
	f.svc = NewService(f.tasks, f.profiles, access.NewResolver(f.profiles), f.publisher)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) as(role domainProfile.Role) (access.Caller, *domainProfile.Profile) {
	p := &domainProfile.Profile{ID: uuid.New(), AccountID: uuid.New(), Role: role}
	f.profiles.EXPECT().GetByAccountID(gomock.Any(), p.AccountID).Return(p, nil).AnyTimes()
	return access.Caller{AccountID: p.AccountID}, p
}

func TestCreateTask_NotifiesAssignee(t *testing.T) {
	f := newFixture(t)
	caller, assigner := f.as(domainProfile.RoleSupport)
	assigneeID := uuid.New()
	taskID := uuid.New()

	f.profiles.EXPECT().GetByID(gomock.Any(), assigneeID).Return(&domainProfile.Profile{ID: assigneeID}, nil)
	f.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task *domainTask.Task) error {
			if task.Status != domainTask.StatusAssigned || task.IsRead || !task.StartTime.Equal(start) {
				t.Fatalf("unexpected initial state: %+v", task)
			}
			if task.AssignerID != assigner.ID {
				t.Fatalf("assigner not set from caller")
			}
			task.ID = taskID
			return nil
		})
	f.publisher.EXPECT().Publish(gomock.Any(), domainTask.Event{
		Kind:        domainTask.EventAssigned,
		TaskID:      taskID,
		RecipientID: assigneeID,
		Message:     "You have been assigned a new task",
		OccurredAt:  start,
	}).Return(nil)

	resp, err := f.svc.CreateTask(context.Background(), caller, &CreateTaskRequest{
		Title:      "Call shipper",
		Priority:   domainTask.PriorityHigh,
		AssigneeID: assigneeID,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if resp.ID != taskID {
		t.Fatalf("unexpected id %s", resp.ID)
	}
}

func TestCreateTask_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	caller, _ := f.as(domainProfile.RoleAdmin)
	assigneeID := uuid.New()

	f.profiles.EXPECT().GetByID(gomock.Any(), assigneeID).Return(&domainProfile.Profile{ID: assigneeID}, nil)
	f.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := f.svc.CreateTask(context.Background(), caller, &CreateTaskRequest{
		Title:      "Chase invoice",
		Priority:   domainTask.PriorityLow,
		AssigneeID: assigneeID,
	})
	if err != nil {
		t.Fatalf("CreateTask should succeed, got %v", err)
	}
}

func TestUpdateTaskStatus_OnlyAssignee(t *testing.T) {
	f := newFixture(t)
	caller, _ := f.as(domainProfile.RoleAdmin)

	existing := &domainTask.Task{ID: uuid.New(), AssigneeID: uuid.New(), Status: domainTask.StatusAssigned}
	f.tasks.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

	_, err := f.svc.UpdateTaskStatus(context.Background(), caller, existing.ID,
		&UpdateStatusRequest{Status: domainTask.StatusPending})
	if !errors.Is(err, appErrors.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestUpdateTaskStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to domainTask.Status
		ok       bool
		kind     domainTask.EventKind
		message  string
	}{
		{domainTask.StatusAssigned, domainTask.StatusPending, true, domainTask.EventAccepted, "Task has been pending"},
		{domainTask.StatusAssigned, domainTask.StatusCancelled, true, domainTask.EventDeclined, "Task has been cancelled"},
		{domainTask.StatusPending, domainTask.StatusCompleted, true, domainTask.EventCompleted, "Task has been completed"},
		{domainTask.StatusPending, domainTask.StatusCancelled, true, domainTask.EventDeclined, "Task has been cancelled"},
		{domainTask.StatusAssigned, domainTask.StatusCompleted, false, "", ""},
		{domainTask.StatusCompleted, domainTask.StatusPending, false, "", ""},
		{domainTask.StatusCancelled, domainTask.StatusCompleted, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			f := newFixture(t)
			caller, assignee := f.as(domainProfile.RoleBrokerSalesAgent)

			existing := &domainTask.Task{
				ID:         uuid.New(),
				AssigneeID: assignee.ID,
				AssignerID: uuid.New(),
				Status:     tt.from,
				StartTime:  start,
			}
			f.tasks.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
			if tt.ok {
				f.tasks.EXPECT().UpdateStatus(gomock.Any(), existing.ID, tt.to, gomock.Any()).Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e domainTask.Event) error {
						if e.Kind != tt.kind || e.Message != tt.message || e.RecipientID != existing.AssignerID {
							t.Fatalf("unexpected event %+v", e)
						}
						return nil
					})
			}

			_, err := f.svc.UpdateTaskStatus(context.Background(), caller, existing.ID, &UpdateStatusRequest{Status: tt.to})
			if tt.ok && err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			if !tt.ok && !errors.Is(err, appErrors.ErrInvalidState) {
				t.Fatalf("expected ErrInvalidState, got %v", err)
			}
		})
	}
}

func TestUpdateTaskStatus_CompletionNotBeforeStart(t *testing.T) {
	f := newFixture(t)
	caller, assignee := f.as(domainProfile.RoleBrokerSalesAgent)
	f.clock = start.Add(-time.Minute)

	existing := &domainTask.Task{
		ID:         uuid.New(),
		AssigneeID: assignee.ID,
		AssignerID: uuid.New(),
		Status:     domainTask.StatusPending,
		StartTime:  start,
	}
	f.tasks.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	f.tasks.EXPECT().UpdateStatus(gomock.Any(), existing.ID, domainTask.StatusCompleted, gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.svc.UpdateTaskStatus(context.Background(), caller, existing.ID,
		&UpdateStatusRequest{Status: domainTask.StatusCompleted})
	if err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if resp.CompletionTime == nil || resp.CompletionTime.Before(resp.StartTime) {
		t.Fatalf("completion time %v precedes start %v", resp.CompletionTime, resp.StartTime)
	}
}

func TestUpdateTaskStatus_RejectsAssigned(t *testing.T) {
	f := newFixture(t)
	caller, _ := f.as(domainProfile.RoleBrokerSalesAgent)

	_, err := f.svc.UpdateTaskStatus(context.Background(), caller, uuid.New(),
		&UpdateStatusRequest{Status: domainTask.StatusAssigned})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestComputeMetrics(t *testing.T) {
	done := start.Add(2 * time.Hour)
	tasks := []*domainTask.Task{
		{Status: domainTask.StatusAssigned, Priority: domainTask.PriorityLow, StartTime: start},
		{Status: domainTask.StatusPending, Priority: domainTask.PriorityMedium, StartTime: start},
		{Status: domainTask.StatusCompleted, Priority: domainTask.PriorityEmergency, StartTime: start, CompletionTime: &done},
		{Status: domainTask.StatusCancelled, Priority: domainTask.PriorityHigh, StartTime: start},
	}

	m := ComputeMetrics(tasks)
	if m.Incoming != 1 || m.Open != 2 || m.Completed != 1 || m.Emergency != 1 {
		t.Fatalf("unexpected counters %+v", m)
	}
	if m.AverageCompletionTimeMs != float64((2 * time.Hour).Milliseconds()) {
		t.Fatalf("unexpected average %v", m.AverageCompletionTimeMs)
	}
}

func TestComputeMetrics_NoCompletedTasks(t *testing.T) {
	m := ComputeMetrics([]*domainTask.Task{{Status: domainTask.StatusAssigned}})
	if m.AverageCompletionTimeMs != 0 {
		t.Fatalf("expected zero average, got %v", m.AverageCompletionTimeMs)
	}
	if ComputeMetrics(nil).AverageCompletionTimeMs != 0 {
		t.Fatalf("expected zero average on empty input")
	}
}

func TestGetMyTasks_FiltersByAssignee(t *testing.T) {
	f := newFixture(t)
	caller, me := f.as(domainProfile.RoleSupport)
	status := domainTask.StatusPending

	f.tasks.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter *domainTask.Filter) ([]*domainTask.Task, error) {
			if filter.AssigneeID == nil || *filter.AssigneeID != me.ID || filter.AssignerID != nil {
				t.Fatalf("unexpected filter %+v", filter)
			}
			if filter.Status == nil || *filter.Status != status {
				t.Fatalf("status filter missing")
			}
			return []*domainTask.Task{{ID: uuid.New(), AssigneeID: me.ID, Status: status}}, nil
		})

	tasks, err := f.svc.GetMyTasks(context.Background(), caller, &ListTasksRequest{Status: &status})
	if err != nil || len(tasks) != 1 {
		t.Fatalf("GetMyTasks: %v %d", err, len(tasks))
	}
}
