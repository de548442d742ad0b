package dashboard

import (
	"context"
	"errors"
	"testing"

	domainLoad "freight-tms/internal/domain/load"
	loadMocks "freight-tms/internal/domain/load/mocks"
	domainProfile "freight-tms/internal/domain/profile"
	profileMocks "freight-tms/internal/domain/profile/mocks"
	domainTask "freight-tms/internal/domain/task"
	taskMocks "freight-tms/internal/domain/task/mocks"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestAggregate_Empty(t *testing.T) {
	m := Aggregate(nil, nil, nil)
	if m.TopPerformer != nil {
		t.Fatalf("expected no top performer")
	}
	if m.TopBranch != "N/A" {
		t.Fatalf("expected N/A, got %q", m.TopBranch)
	}
	if m.TotalRevenue != 0 || len(m.MonthlyRevenue) != 0 || len(m.BottomPerformers) != 0 {
		t.Fatalf("unexpected output %+v", m)
	}
}

func TestAggregate(t *testing.T) {
	alice := &domainProfile.Profile{ID: uuid.New(), Name: "Alice", Role: domainProfile.RoleBrokerSalesAgent}
	bob := &domainProfile.Profile{ID: uuid.New(), Name: "Bob", Role: domainProfile.RoleCarrierSalesAgent}
	cara := &domainProfile.Profile{ID: uuid.New(), Name: "Cara", Role: domainProfile.RoleBrokerSalesAgent}
	dan := &domainProfile.Profile{ID: uuid.New(), Name: "Dan", Role: domainProfile.RoleCarrierSalesAgent}
	boss := &domainProfile.Profile{ID: uuid.New(), Name: "Boss", Role: domainProfile.RoleAdmin}

	delivered := func(agent uuid.UUID, branch domainLoad.Branch, invoice float64, invoiced *string) *domainLoad.Load {
		l := &domainLoad.Load{
			AssignedAgentID: agent,
			Branch:          branch,
			Status:          domainLoad.StatusClosed,
			Progress:        domainLoad.ProgressDelivered,
			Milestones:      domainLoad.Milestones{DateInvoicedClient: invoiced},
		}
		l.TotalFinalInvoice = invoice
		return l
	}

	paid := delivered(alice.ID, domainLoad.BranchRoy, 1000, strPtr("2025-01-15"))
	paid.DateClientPaid = strPtr("2025-02-01")

	loads := []*domainLoad.Load{
		paid,
		delivered(alice.ID, domainLoad.BranchRoy, 500, strPtr("2025-01-20")),
		delivered(bob.ID, domainLoad.BranchAli, 300, strPtr("2025-02-03")),
		{AssignedAgentID: cara.ID, Branch: domainLoad.BranchAli, Status: domainLoad.StatusActive, Progress: domainLoad.ProgressInTransit},
	}
	tasks := []*domainTask.Task{
		{Status: domainTask.StatusPending},
		{Status: domainTask.StatusAssigned},
		{Status: domainTask.StatusAssigned},
		{Status: domainTask.StatusCompleted},
	}

	m := Aggregate(loads, tasks, []*domainProfile.Profile{boss, alice, bob, cara, dan})

	if m.TotalRevenue != 1800 {
		t.Errorf("total revenue = %v", m.TotalRevenue)
	}
	if m.PendingInvoices != 2 {
		t.Errorf("pending invoices = %d", m.PendingInvoices)
	}
	if m.ActiveLoads != 1 || m.CompletedLoads != 3 {
		t.Errorf("active %d completed %d", m.ActiveLoads, m.CompletedLoads)
	}
	if m.PendingTasks != 1 || m.IncomingTasks != 2 {
		t.Errorf("pending %d incoming %d", m.PendingTasks, m.IncomingTasks)
	}
	if m.MonthlyRevenue["2025-01"] != 1500 || m.MonthlyRevenue["2025-02"] != 300 {
		t.Errorf("monthly revenue = %v", m.MonthlyRevenue)
	}
	if m.TopPerformer == nil || m.TopPerformer.Name != "Alice" || m.TopPerformer.CompletedLoads != 2 || m.TopPerformer.Revenue != 1500 {
		t.Errorf("top performer = %+v", m.TopPerformer)
	}
	if m.TopBranch != string(domainLoad.BranchRoy) {
		t.Errorf("top branch = %q", m.TopBranch)
	}
	if len(m.BranchPerformance) != 2 {
		t.Errorf("branch performance = %+v", m.BranchPerformance)
	}

	if len(m.BottomPerformers) != 3 {
		t.Fatalf("bottom performers = %+v", m.BottomPerformers)
	}
	// Cara and Dan have zero deliveries and keep profile order; admins never appear.
	if m.BottomPerformers[0].Name != "Cara" || m.BottomPerformers[1].Name != "Dan" || m.BottomPerformers[2].Name != "Bob" {
		t.Errorf("bottom performers order = %+v", m.BottomPerformers)
	}
	if m.BottomPerformers[2].Role != string(domainProfile.RoleCarrierSalesAgent) {
		t.Errorf("role missing: %+v", m.BottomPerformers[2])
	}
}

func TestAggregate_BranchTieKeepsFirstSeen(t *testing.T) {
	loads := []*domainLoad.Load{
		{Branch: domainLoad.BranchAndrew, Progress: domainLoad.ProgressDelivered},
		{Branch: domainLoad.BranchNasif, Progress: domainLoad.ProgressDelivered},
	}
	if got := Aggregate(loads, nil, nil).TopBranch; got != string(domainLoad.BranchAndrew) {
		t.Fatalf("top branch = %q", got)
	}
}

func TestGetMetrics_RequiresCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(loadMocks.NewMockRepository(ctrl), taskMocks.NewMockRepository(ctrl), profileMocks.NewMockRepository(ctrl))

	_, err := svc.GetMetrics(context.Background(), access.Caller{})
	if !errors.Is(err, appErrors.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestGetMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	loads := loadMocks.NewMockRepository(ctrl)
	tasks := taskMocks.NewMockRepository(ctrl)
	profiles := profileMocks.NewMockRepository(ctrl)

	loads.EXPECT().List(gomock.Any(), &domainLoad.Filter{}).Return([]*domainLoad.Load{
		{Status: domainLoad.StatusActive, Progress: domainLoad.ProgressPlanning},
	}, nil)
	tasks.EXPECT().List(gomock.Any(), &domainTask.Filter{}).Return(nil, nil)
	profiles.EXPECT().List(gomock.Any(), &domainProfile.Filter{}).Return(nil, nil)

	m, err := NewService(loads, tasks, profiles).GetMetrics(context.Background(), access.Caller{AccountID: uuid.New()})
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if m.ActiveLoads != 1 {
		t.Fatalf("active loads = %d", m.ActiveLoads)
	}
}
