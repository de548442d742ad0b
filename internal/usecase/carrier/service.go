package carrier

import (
	"context"
	domainCarrier "freight-tms/internal/domain/carrier"
	"freight-tms/internal/domain/storage"
	"freight-tms/internal/logger"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	carrierRepo domainCarrier.Repository
	blobs       storage.BlobStore
	resolver    *access.Resolver
}

func NewService(carrierRepo domainCarrier.Repository, blobs storage.BlobStore, resolver *access.Resolver) *Service {
	return &Service{carrierRepo: carrierRepo, blobs: blobs, resolver: resolver}
}

func (s *Service) CreateCarrier(ctx context.Context, caller access.Caller, req *CarrierRequest) (*CarrierResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}
	if err := s.requireFiles(ctx, req.W9FileID, req.SupportingDocsFileID); err != nil {
		return nil, err
	}

	c := &domainCarrier.Carrier{CreatedBy: caller.AccountID}
	applyRequest(c, req)

	if err := s.carrierRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Carrier created successfully",
		zap.String("carrier_id", c.ID.String()),
		zap.String("company_name", c.CompanyName),
		zap.String("created_by", caller.AccountID.String()),
		zap.String("event", "carrier_created"),
	)
	return ToCarrierResponse(c), nil
}

func (s *Service) GetCarrier(ctx context.Context, caller access.Caller, id uuid.UUID) (*CarrierResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	c, err := s.carrierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCarrierResponse(c), nil
}

func (s *Service) ListCarriers(ctx context.Context, caller access.Caller, req *ListCarriersRequest) ([]*CarrierResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	if req == nil {
		req = &ListCarriersRequest{}
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid filter", err)
	}

	carriers, err := s.carrierRepo.List(ctx, req.Status)
	if err != nil {
		return nil, err
	}

	responses := make([]*CarrierResponse, 0, len(carriers))
	for _, c := range carriers {
		responses = append(responses, ToCarrierResponse(c))
	}
	return responses, nil
}

// UpdateCarrier replaces the editable fields. CreatedBy never changes, and
// file IDs absent from the request keep their stored values.
func (s *Service) UpdateCarrier(ctx context.Context, caller access.Caller, id uuid.UUID, req *CarrierRequest) (*CarrierResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}
	if err := s.requireFiles(ctx, req.W9FileID, req.SupportingDocsFileID); err != nil {
		return nil, err
	}

	c, err := s.carrierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	w9, docs := c.W9FileID, c.SupportingDocsFileID
	applyRequest(c, req)
	if c.W9FileID == nil {
		c.W9FileID = w9
	}
	if c.SupportingDocsFileID == nil {
		c.SupportingDocsFileID = docs
	}

	if err := s.carrierRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Carrier updated successfully",
		zap.String("carrier_id", c.ID.String()),
		zap.String("status", string(c.Status)),
		zap.String("event", "carrier_updated"),
	)
	return ToCarrierResponse(c), nil
}

func (s *Service) DeleteCarrier(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return err
	}
	if err := s.carrierRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Carrier deleted successfully",
		zap.String("carrier_id", id.String()),
		zap.String("deleted_by", caller.AccountID.String()),
		zap.String("event", "carrier_deleted"),
	)
	return nil
}

func (s *Service) AttachW9(ctx context.Context, caller access.Caller, id uuid.UUID, req *AttachFileRequest) (*CarrierResponse, error) {
	return s.attach(ctx, caller, id, req, func(c *domainCarrier.Carrier, storageID string) {
		c.W9FileID = &storageID
	}, "carrier_w9_attached")
}

func (s *Service) AttachSupportingDocs(ctx context.Context, caller access.Caller, id uuid.UUID, req *AttachFileRequest) (*CarrierResponse, error) {
	return s.attach(ctx, caller, id, req, func(c *domainCarrier.Carrier, storageID string) {
		c.SupportingDocsFileID = &storageID
	}, "carrier_docs_attached")
}

func (s *Service) attach(ctx context.Context, caller access.Caller, id uuid.UUID, req *AttachFileRequest,
	set func(*domainCarrier.Carrier, string), event string) (*CarrierResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	c, err := s.carrierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireFiles(ctx, &req.StorageID); err != nil {
		return nil, err
	}
	set(c, req.StorageID)

	if err := s.carrierRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Carrier file attached",
		zap.String("carrier_id", c.ID.String()),
		zap.String("storage_id", req.StorageID),
		zap.String("event", event),
	)
	return ToCarrierResponse(c), nil
}

// requireFiles fails with storage.ErrFileNotFound unless every given ID names
// an uploaded file. Nil IDs are skipped.
func (s *Service) requireFiles(ctx context.Context, ids ...*string) error {
	for _, id := range ids {
		if id == nil {
			continue
		}
		if _, err := s.blobs.Stat(ctx, *id); err != nil {
			return err
		}
	}
	return nil
}

func applyRequest(c *domainCarrier.Carrier, req *CarrierRequest) {
	c.CompanyName = utils.SanitizeString(req.CompanyName)
	c.StreetAddress = utils.SanitizeString(req.StreetAddress)
	c.City = utils.SanitizeString(req.City)
	c.State = utils.SanitizeString(req.State)
	c.Zip = utils.SanitizeString(req.Zip)
	c.POC = utils.SanitizeString(req.POC)
	c.POCPhone = utils.SanitizePhone(req.POCPhone)
	c.POCEmail = utils.SanitizeEmail(req.POCEmail)
	c.TruckNumber = utils.SanitizeOptional(req.TruckNumber)
	c.ChassisNumber = utils.SanitizeOptional(req.ChassisNumber)
	c.MCNumber = utils.SanitizeString(req.MCNumber)
	c.DOTNumber = utils.SanitizeString(req.DOTNumber)
	c.EINNumber = utils.SanitizeString(req.EINNumber)
	c.W9FileID = req.W9FileID
	c.SupportingDocsFileID = req.SupportingDocsFileID
	c.PaymentOption = req.PaymentOption
	c.PaymentMethod = req.PaymentMethod
	c.Website = req.Website
	c.SaferScoreLink = req.SaferScoreLink
	c.Status = req.Status
}
