package location

import (
	"context"
	domainLocation "freight-tms/internal/domain/location"
	"freight-tms/internal/logger"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	locationRepo domainLocation.Repository
	resolver     *access.Resolver
}

func NewService(locationRepo domainLocation.Repository, resolver *access.Resolver) *Service {
	return &Service{locationRepo: locationRepo, resolver: resolver}
}

func (s *Service) CreateLocation(ctx context.Context, caller access.Caller, req *CreateLocationRequest) (*LocationResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	l := &domainLocation.Location{
		BuildingName:     utils.SanitizeString(req.BuildingName),
		StreetAddress:    utils.SanitizeString(req.StreetAddress),
		City:             utils.SanitizeString(req.City),
		State:            utils.SanitizeString(req.State),
		Zip:              utils.SanitizeString(req.Zip),
		Country:          utils.SanitizeString(req.Country),
		Phone:            utils.SanitizePhone(req.Phone),
		HoursOfOperation: utils.SanitizeString(req.HoursOfOperation),
	}
	if err := s.locationRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	logger.Info("Location created successfully",
		zap.String("location_id", l.ID.String()),
		zap.String("created_by", principal.ProfileID().String()),
		zap.String("event", "location_created"),
	)
	return ToLocationResponse(l), nil
}

func (s *Service) GetLocation(ctx context.Context, caller access.Caller, id uuid.UUID) (*LocationResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	l, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToLocationResponse(l), nil
}

// ListLocations narrows by city when one is given.
func (s *Service) ListLocations(ctx context.Context, caller access.Caller, city string) ([]*LocationResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	locations, err := s.locationRepo.List(ctx, strings.TrimSpace(city))
	if err != nil {
		return nil, err
	}

	responses := make([]*LocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, ToLocationResponse(l))
	}
	return responses, nil
}

func (s *Service) UpdateLocation(ctx context.Context, caller access.Caller, id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	l, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for dst, src := range map[*string]*string{
		&l.BuildingName:     req.BuildingName,
		&l.StreetAddress:    req.StreetAddress,
		&l.City:             req.City,
		&l.State:            req.State,
		&l.Zip:              req.Zip,
		&l.Country:          req.Country,
		&l.HoursOfOperation: req.HoursOfOperation,
	} {
		if src != nil {
			*dst = utils.SanitizeString(*src)
		}
	}
	if req.Phone != nil {
		l.Phone = utils.SanitizePhone(*req.Phone)
	}

	if err := s.locationRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	logger.Info("Location updated successfully",
		zap.String("location_id", l.ID.String()),
		zap.String("updated_by", principal.ProfileID().String()),
		zap.String("event", "location_updated"),
	)
	return ToLocationResponse(l), nil
}

func (s *Service) DeleteLocation(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return err
	}
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Location deleted successfully",
		zap.String("location_id", id.String()),
		zap.String("deleted_by", principal.ProfileID().String()),
		zap.String("event", "location_deleted"),
	)
	return nil
}
