package load

import (
	"context"
	"fmt"
	domainLoad "freight-tms/internal/domain/load"
	"freight-tms/internal/logger"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Service implements load use cases
type Service struct {
	loadRepo  domainLoad.Repository
	sequencer domainLoad.Sequencer
	resolver  *access.Resolver
	now       func() time.Time
}

// NewService creates a new load service
func NewService(
	loadRepo domainLoad.Repository,
	sequencer domainLoad.Sequencer,
	resolver *access.Resolver,
) *Service {
	return &Service{
		loadRepo:  loadRepo,
		sequencer: sequencer,
		resolver:  resolver,
		now:       time.Now,
	}
}

func (s *Service) CreateLoad(ctx context.Context, caller access.Caller, req *LoadRequest) (*LoadResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !canCreate(principal) {
		logger.Warn("Load creation denied",
			zap.String("profile_id", principal.ProfileID().String()),
			zap.String("role", string(principal.Profile.Role)),
			zap.String("event", "load_create_denied"),
		)
		return nil, appErrors.Forbidden("Not authorized to create loads")
	}

	if err := ValidateLoadRequest(req); err != nil {
		return nil, err
	}

	seq, err := s.sequencer.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate load number: %w", err)
	}

	l := &domainLoad.Load{
		LoadID:         domainLoad.FormatLoadID(seq),
		LoadCount:      seq,
		TrackingNumber: domainLoad.FormatTrackingNumber(seq),
	}
	applyRequest(l, req)

	if err := s.loadRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	logger.Info("Load created successfully",
		zap.String("load_id", l.LoadID),
		zap.String("id", l.ID.String()),
		zap.String("created_by", principal.ProfileID().String()),
		zap.String("assigned_agent_id", l.AssignedAgentID.String()),
		zap.String("event", "load_created"),
	)

	return ToLoadResponse(l), nil
}

func (s *Service) GetLoad(ctx context.Context, caller access.Caller, id uuid.UUID) (*LoadResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	l, err := s.loadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canAccess(principal, l) {
		return nil, appErrors.Forbidden("Not authorized to view this load")
	}

	return ToLoadResponse(l), nil
}

// ListLoads filters by status and progress. Callers other than admin and
// manager only ever see loads assigned to them.
func (s *Service) ListLoads(ctx context.Context, caller access.Caller, req *ListLoadsRequest) ([]*LoadResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &ListLoadsRequest{}
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid filter", err)
	}

	filter := &domainLoad.Filter{
		Status:   req.Status,
		Progress: req.Progress,
	}
	if !principal.IsPrivileged() {
		profileID := principal.ProfileID()
		filter.AssignedAgentID = &profileID
	}

	loads, err := s.loadRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return ToLoadResponses(loads), nil
}

// ListAllLoads backs the invoice screen: admin, manager and support see
// every load, everyone else their own.
func (s *Service) ListAllLoads(ctx context.Context, caller access.Caller) ([]*LoadResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	filter := &domainLoad.Filter{}
	if !canSeeAll(principal) {
		profileID := principal.ProfileID()
		filter.AssignedAgentID = &profileID
	}

	loads, err := s.loadRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return ToLoadResponses(loads), nil
}

// UpdateLoad replaces every mutable field. Status and progress accept any
// combination of values.
func (s *Service) UpdateLoad(ctx context.Context, caller access.Caller, id uuid.UUID, req *LoadRequest) (*LoadResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	l, err := s.loadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(principal, l) {
		return nil, appErrors.Forbidden("Not authorized to update this load")
	}

	if err := ValidateLoadRequest(req); err != nil {
		return nil, err
	}

	applyRequest(l, req)

	if err := s.loadRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	logger.Info("Load updated successfully",
		zap.String("load_id", l.LoadID),
		zap.String("id", l.ID.String()),
		zap.String("updated_by", principal.ProfileID().String()),
		zap.String("load_status", string(l.Status)),
		zap.String("load_progress", string(l.Progress)),
		zap.String("event", "load_updated"),
	)

	return ToLoadResponse(l), nil
}

func (s *Service) DeleteLoad(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return err
	}
	if !principal.IsPrivileged() {
		return appErrors.Forbidden("Not authorized to delete loads")
	}

	if err := s.loadRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Load deleted successfully",
		zap.String("id", id.String()),
		zap.String("deleted_by", principal.ProfileID().String()),
		zap.String("event", "load_deleted"),
	)

	return nil
}

// ToggleInvoiceStatus stamps dateClientPaid with today's date, or clears it.
func (s *Service) ToggleInvoiceStatus(ctx context.Context, caller access.Caller, id uuid.UUID, isPaid bool) (*string, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !canSeeAll(principal) {
		return nil, appErrors.Forbidden("Not authorized to update invoice status")
	}

	var paidDate *string
	if isPaid {
		today := s.now().UTC().Format(dateLayout)
		paidDate = &today
	}

	if err := s.loadRepo.SetClientPaidDate(ctx, id, paidDate); err != nil {
		return nil, err
	}

	logger.Info("Invoice status toggled",
		zap.String("id", id.String()),
		zap.Bool("is_paid", isPaid),
		zap.String("updated_by", principal.ProfileID().String()),
		zap.String("event", "load_invoice_toggled"),
	)

	return paidDate, nil
}

func (s *Service) GetMetrics(ctx context.Context, caller access.Caller) (*MetricsResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}

	filter := &domainLoad.Filter{}
	if !principal.IsPrivileged() {
		profileID := principal.ProfileID()
		filter.AssignedAgentID = &profileID
	}

	loads, err := s.loadRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	metrics := &MetricsResponse{}
	for _, l := range loads {
		if l.Progress == domainLoad.ProgressQuoted {
			metrics.Quoted++
		}
		if l.Status == domainLoad.StatusActive {
			metrics.Active++
		}
		if l.Progress == domainLoad.ProgressDelivered {
			metrics.Completed++
		}
	}

	return metrics, nil
}
