package bol

import (
	"context"
	domainBOL "freight-tms/internal/domain/bol"
	"freight-tms/internal/logger"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	bolRepo  domainBOL.Repository
	resolver *access.Resolver
	now      func() time.Time
}

func NewService(bolRepo domainBOL.Repository, resolver *access.Resolver) *Service {
	return &Service{bolRepo: bolRepo, resolver: resolver, now: time.Now}
}

func (s *Service) CreateBOL(ctx context.Context, caller access.Caller, req *BOLRequest) (*BOLResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	b := &domainBOL.BillOfLading{
		CreatedBy: caller.AccountID,
		CreatedAt: s.now().UTC(),
	}
	applyRequest(b, req)
	b.Recalculate()

	if err := s.bolRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("Bill of lading created",
		zap.String("bol_id", b.ID.String()),
		zap.String("load_id", b.LoadID),
		zap.Float64("grand_total", b.GrandTotal),
		zap.String("event", "bol_created"),
	)
	return ToBOLResponse(b), nil
}

func (s *Service) GetBOL(ctx context.Context, caller access.Caller, id uuid.UUID) (*BOLResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	b, err := s.bolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToBOLResponse(b), nil
}

// ListBOLs returns newest first.
func (s *Service) ListBOLs(ctx context.Context, caller access.Caller) ([]*BOLResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	bols, err := s.bolRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*BOLResponse, 0, len(bols))
	for _, b := range bols {
		responses = append(responses, ToBOLResponse(b))
	}
	return responses, nil
}

func (s *Service) UpdateBOL(ctx context.Context, caller access.Caller, id uuid.UUID, req *BOLRequest) (*BOLResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	b, err := s.bolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyRequest(b, req)
	b.Recalculate()

	if err := s.bolRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("Bill of lading updated",
		zap.String("bol_id", b.ID.String()),
		zap.Float64("grand_total", b.GrandTotal),
		zap.String("event", "bol_updated"),
	)
	return ToBOLResponse(b), nil
}

func (s *Service) DeleteBOL(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return err
	}
	if err := s.bolRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Bill of lading deleted",
		zap.String("bol_id", id.String()),
		zap.String("deleted_by", caller.AccountID.String()),
		zap.String("event", "bol_deleted"),
	)
	return nil
}

func applyRequest(b *domainBOL.BillOfLading, req *BOLRequest) {
	b.LoadID = utils.SanitizeString(req.LoadID)
	b.Date = req.Date
	b.EquipmentType = utils.SanitizeString(req.EquipmentType)
	b.Weight = utils.SanitizeString(req.Weight)
	b.EquipmentLength = utils.SanitizeString(req.EquipmentLength)
	b.Commodity = utils.SanitizeString(req.Commodity)
	b.Distance = utils.SanitizeString(req.Distance)
	b.ContainerNumber = utils.SanitizeOptional(req.ContainerNumber)
	b.TractorNumber = utils.SanitizeOptional(req.TractorNumber)

	b.CarrierName = utils.SanitizeString(req.CarrierName)
	b.CarrierAddress = utils.SanitizeString(req.CarrierAddress)
	b.CarrierCity = utils.SanitizeString(req.CarrierCity)
	b.CarrierState = utils.SanitizeString(req.CarrierState)
	b.CarrierZip = utils.SanitizeString(req.CarrierZip)
	b.DOTNumber = utils.SanitizeString(req.DOTNumber)
	b.MCNumber = utils.SanitizeString(req.MCNumber)
	b.DriverName = utils.SanitizeString(req.DriverName)

	if req.NotesAndReferences != nil {
		v := utils.SanitizeText(*req.NotesAndReferences)
		b.NotesAndReferences = &v
	} else {
		b.NotesAndReferences = nil
	}
	if req.Note != nil {
		v := utils.SanitizeText(*req.Note)
		b.Note = &v
	} else {
		b.Note = nil
	}

	b.Pickup = toParty(req.Pickup)
	b.Delivery = toParty(req.Delivery)

	b.PayItems = make([]domainBOL.PayItem, 0, len(req.PayItems))
	for _, item := range req.PayItems {
		b.PayItems = append(b.PayItems, domainBOL.PayItem{
			Description: utils.SanitizeString(item.Description),
			Notes:       utils.SanitizeText(item.Notes),
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}

	b.SignerName = utils.SanitizeString(req.SignerName)
	b.Signature = req.Signature
	b.SignDate = req.SignDate
}

func toParty(p PartyRequest) domainBOL.Party {
	return domainBOL.Party{
		CompanyName: utils.SanitizeString(p.CompanyName),
		Address:     utils.SanitizeString(p.Address),
		City:        utils.SanitizeString(p.City),
		State:       utils.SanitizeString(p.State),
		Zip:         utils.SanitizeString(p.Zip),
	}
}
