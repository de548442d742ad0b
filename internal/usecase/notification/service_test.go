package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	domainNotification "freight-tms/internal/domain/notification"
	notificationMocks "freight-tms/internal/domain/notification/mocks"
	domainProfile "freight-tms/internal/domain/profile"
	profileMocks "freight-tms/internal/domain/profile/mocks"
	domainTask "freight-tms/internal/domain/task"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*Service, *notificationMocks.MockRepository, *notificationMocks.MockBroadcaster, *profileMocks.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := notificationMocks.NewMockRepository(ctrl)
	broadcaster := notificationMocks.NewMockBroadcaster(ctrl)
	profiles := profileMocks.NewMockRepository(ctrl)
	return NewService(repo, access.NewResolver(profiles), broadcaster), repo, broadcaster, profiles
}

func TestPublish_StoresAndBroadcasts(t *testing.T) {
	svc, repo, broadcaster, _ := setup(t)
	event := domainTask.Event{
		Kind:        domainTask.EventDeclined,
		TaskID:      uuid.New(),
		RecipientID: uuid.New(),
		Message:     "Task has been cancelled",
		OccurredAt:  time.Now(),
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domainNotification.Notification) error {
			if n.Type != domainNotification.TypeDeclined || n.UserID != event.RecipientID || n.IsRead {
				t.Fatalf("unexpected notification %+v", n)
			}
			n.ID = uuid.New()
			return nil
		})
	broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return(errors.New("offline"))

	if err := svc.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func TestMarkRead_OtherOwner(t *testing.T) {
	svc, repo, _, profiles := setup(t)
	me := &domainProfile.Profile{ID: uuid.New(), AccountID: uuid.New(), Role: domainProfile.RoleSupport}
	profiles.EXPECT().GetByAccountID(gomock.Any(), me.AccountID).Return(me, nil)

	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).Return(&domainNotification.Notification{ID: id, UserID: uuid.New()}, nil)

	err := svc.MarkRead(context.Background(), access.Caller{AccountID: me.AccountID}, id)
	if !errors.Is(err, appErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMarkRead_Missing(t *testing.T) {
	svc, repo, _, profiles := setup(t)
	me := &domainProfile.Profile{ID: uuid.New(), AccountID: uuid.New(), Role: domainProfile.RoleSupport}
	profiles.EXPECT().GetByAccountID(gomock.Any(), me.AccountID).Return(me, nil)

	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, domainNotification.ErrNotificationNotFound)

	err := svc.MarkRead(context.Background(), access.Caller{AccountID: me.AccountID}, id)
	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Notification not found or unauthorized" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestMarkRead_Owner(t *testing.T) {
	svc, repo, _, profiles := setup(t)
	me := &domainProfile.Profile{ID: uuid.New(), AccountID: uuid.New(), Role: domainProfile.RoleSupport}
	profiles.EXPECT().GetByAccountID(gomock.Any(), me.AccountID).Return(me, nil)

	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).Return(&domainNotification.Notification{ID: id, UserID: me.ID}, nil)
	repo.EXPECT().MarkRead(gomock.Any(), id).Return(nil)

	if err := svc.MarkRead(context.Background(), access.Caller{AccountID: me.AccountID}, id); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
}
