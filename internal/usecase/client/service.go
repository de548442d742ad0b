package client

import (
	"context"
	domainClient "freight-tms/internal/domain/client"
	"freight-tms/internal/domain/storage"
	"freight-tms/internal/logger"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	clientRepo domainClient.Repository
	blobs      storage.BlobStore
	resolver   *access.Resolver
}

func NewService(clientRepo domainClient.Repository, blobs storage.BlobStore, resolver *access.Resolver) *Service {
	return &Service{clientRepo: clientRepo, blobs: blobs, resolver: resolver}
}

func (s *Service) CreateClient(ctx context.Context, caller access.Caller, req *CreateClientRequest) (*ClientResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}
	if req.DocumentsStorageID != nil {
		if _, err := s.blobs.Stat(ctx, *req.DocumentsStorageID); err != nil {
			return nil, err
		}
	}

	c := &domainClient.Client{
		BusinessType:         req.BusinessType,
		BusinessName:         utils.SanitizeString(req.BusinessName),
		StreetAddress:        utils.SanitizeString(req.StreetAddress),
		City:                 utils.SanitizeString(req.City),
		State:                utils.SanitizeString(req.State),
		Zip:                  utils.SanitizeString(req.Zip),
		Country:              utils.SanitizeString(req.Country),
		EIN:                  utils.SanitizeString(req.EIN),
		DOT:                  utils.SanitizeOptional(req.DOT),
		MC:                   utils.SanitizeOptional(req.MC),
		POCName:              utils.SanitizeString(req.POCName),
		POCDob:               req.POCDob,
		POCPhone:             utils.SanitizePhone(req.POCPhone),
		CompanyPhone:         req.CompanyPhone,
		CompanyEmail:         req.CompanyEmail,
		AccountsPayableEmail: req.AccountsPayableEmail,
		Factorable:           req.Factorable,
		CreditApproved:       req.CreditApproved,
		CreditUsed:           req.CreditUsed,
		DocumentsStorageID:   req.DocumentsStorageID,
	}

	if err := s.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Client created successfully",
		zap.String("client_id", c.ID.String()),
		zap.String("business_name", c.BusinessName),
		zap.String("created_by", principal.ProfileID().String()),
		zap.String("event", "client_created"),
	)

	return ToClientResponse(c), nil
}

func (s *Service) GetClient(ctx context.Context, caller access.Caller, id uuid.UUID) (*ClientResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToClientResponse(c), nil
}

func (s *Service) ListClients(ctx context.Context, caller access.Caller, req *ListClientsRequest) ([]*ClientResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	if req == nil {
		req = &ListClientsRequest{}
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid filter", err)
	}

	clients, err := s.clientRepo.List(ctx, &domainClient.Filter{
		BusinessType: req.BusinessType,
		Search:       strings.TrimSpace(req.Search),
	})
	if err != nil {
		return nil, err
	}

	responses := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, ToClientResponse(c))
	}
	return responses, nil
}

func (s *Service) UpdateClient(ctx context.Context, caller access.Caller, id uuid.UUID, req *UpdateClientRequest) (*ClientResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPatch(c, req)

	if err := s.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Client updated successfully",
		zap.String("client_id", c.ID.String()),
		zap.String("updated_by", principal.ProfileID().String()),
		zap.String("event", "client_updated"),
	)

	return ToClientResponse(c), nil
}

func (s *Service) DeleteClient(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return err
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Client deleted successfully",
		zap.String("client_id", id.String()),
		zap.String("deleted_by", principal.ProfileID().String()),
		zap.String("event", "client_deleted"),
	)
	return nil
}

// AttachDocuments records an uploaded file against the client.
func (s *Service) AttachDocuments(ctx context.Context, caller access.Caller, id uuid.UUID, req *AttachDocumentsRequest) (*ClientResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.blobs.Stat(ctx, req.StorageID); err != nil {
		return nil, err
	}
	c.DocumentsStorageID = &req.StorageID

	if err := s.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Client documents attached",
		zap.String("client_id", c.ID.String()),
		zap.String("storage_id", req.StorageID),
		zap.String("event", "client_documents_attached"),
	)
	return ToClientResponse(c), nil
}

func applyPatch(c *domainClient.Client, req *UpdateClientRequest) {
	if req.BusinessType != nil {
		c.BusinessType = *req.BusinessType
	}
	setString(&c.BusinessName, req.BusinessName)
	setString(&c.StreetAddress, req.StreetAddress)
	setString(&c.City, req.City)
	setString(&c.State, req.State)
	setString(&c.Zip, req.Zip)
	setString(&c.Country, req.Country)
	setString(&c.EIN, req.EIN)
	if req.DOT != nil {
		c.DOT = utils.SanitizeOptional(req.DOT)
	}
	if req.MC != nil {
		c.MC = utils.SanitizeOptional(req.MC)
	}
	setString(&c.POCName, req.POCName)
	if req.POCDob != nil {
		c.POCDob = *req.POCDob
	}
	if req.POCPhone != nil {
		c.POCPhone = utils.SanitizePhone(*req.POCPhone)
	}
	if req.CompanyPhone != nil {
		c.CompanyPhone = req.CompanyPhone
	}
	if req.CompanyEmail != nil {
		c.CompanyEmail = req.CompanyEmail
	}
	if req.AccountsPayableEmail != nil {
		c.AccountsPayableEmail = req.AccountsPayableEmail
	}
	if req.Factorable != nil {
		c.Factorable = *req.Factorable
	}
	if req.CreditApproved != nil {
		c.CreditApproved = *req.CreditApproved
	}
	if req.CreditUsed != nil {
		c.CreditUsed = *req.CreditUsed
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = utils.SanitizeString(*src)
	}
}
