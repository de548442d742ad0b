package profile

import (
	"context"
	"errors"
	"fmt"
	domainAccount "freight-tms/internal/domain/account"
	domainProfile "freight-tms/internal/domain/profile"
	"freight-tms/internal/domain/storage"
	"freight-tms/internal/logger"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultName  = "New User"
	firstLoadID  = "L000001"
	filesURLPath = "/api/v1/files/"
)

type Service struct {
	profileRepo   domainProfile.Repository
	accountRepo   domainAccount.Repository
	resolver      *access.Resolver
	blobs         storage.BlobStore
	publicBaseURL string
}

func NewService(
	profileRepo domainProfile.Repository,
	accountRepo domainAccount.Repository,
	resolver *access.Resolver,
	blobs storage.BlobStore,
	publicBaseURL string,
) *Service {
	return &Service{
		profileRepo:   profileRepo,
		accountRepo:   accountRepo,
		resolver:      resolver,
		blobs:         blobs,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *Service) GetMyProfile(ctx context.Context, caller access.Caller) (*ProfileResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	return ToProfileResponse(principal.Profile), nil
}

// InitializeFirstUser returns the caller's profile, creating it as an active
// admin when the profile table is still empty. Later accounts wait for an
// admin to create their profile.
func (s *Service) InitializeFirstUser(ctx context.Context, caller access.Caller) (*ProfileResponse, error) {
	if caller.IsZero() {
		return nil, appErrors.ErrNotAuthenticated
	}

	existing, err := s.profileRepo.GetByAccountID(ctx, caller.AccountID)
	if err == nil {
		return ToProfileResponse(existing), nil
	}
	if !errors.Is(err, domainProfile.ErrProfileNotFound) {
		return nil, err
	}

	count, err := s.profileRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		logger.Warn("Bootstrap refused, profiles already exist",
			zap.String("account_id", caller.AccountID.String()),
			zap.String("event", "profile_bootstrap_refused"),
		)
		return nil, appErrors.ErrProfileNotFound
	}

	a, err := s.accountRepo.GetByID(ctx, caller.AccountID)
	if err != nil {
		return nil, err
	}

	name := a.Name
	if name == "" {
		name = defaultName
	}
	p := &domainProfile.Profile{
		AccountID: a.ID,
		Name:      name,
		Email:     a.Email,
		Role:      domainProfile.RoleAdmin,
		Status:    domainProfile.StatusActive,
		LoadID:    firstLoadID,
	}
	if err := s.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("First profile initialized as admin",
		zap.String("profile_id", p.ID.String()),
		zap.String("account_id", a.ID.String()),
		zap.String("event", "profile_bootstrapped"),
	)

	return ToProfileResponse(p), nil
}

func (s *Service) CreateProfile(ctx context.Context, caller access.Caller, req *CreateProfileRequest) (*ProfileResponse, error) {
	if _, err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	email := utils.SanitizeEmail(req.Email)
	a, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	loadID := ""
	if req.LoadID != nil {
		loadID = strings.TrimSpace(*req.LoadID)
	}
	if loadID == "" {
		count, err := s.profileRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		loadID = fmt.Sprintf("L%06d", count+1)
	}

	status := req.Status
	if status == "" {
		status = domainProfile.StatusActive
	}

	p := &domainProfile.Profile{
		AccountID:      a.ID,
		Name:           utils.SanitizeString(req.Name),
		Email:          email,
		Phone:          req.Phone,
		Manager:        req.Manager,
		Role:           req.Role,
		Status:         status,
		CommissionRate: req.CommissionRate,
		Salary:         utils.SanitizeOptional(req.Salary),
		LoadID:         loadID,
	}
	if err := s.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("Profile created successfully",
		zap.String("profile_id", p.ID.String()),
		zap.String("account_id", a.ID.String()),
		zap.String("role", string(p.Role)),
		zap.String("event", "profile_created"),
	)

	return ToProfileResponse(p), nil
}

func (s *Service) UpdateProfile(ctx context.Context, caller access.Caller, id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if _, err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = utils.SanitizeString(*req.Name)
	}
	if req.Email != nil {
		p.Email = utils.SanitizeEmail(*req.Email)
	}
	if req.Phone != nil {
		phone := utils.SanitizePhone(*req.Phone)
		p.Phone = &phone
	}
	if req.Manager != nil {
		p.Manager = req.Manager
	}
	if req.Role != nil {
		p.Role = *req.Role
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.CommissionRate != nil {
		p.CommissionRate = req.CommissionRate
	}
	if req.Salary != nil {
		p.Salary = utils.SanitizeOptional(req.Salary)
	}
	if req.LoadID != nil {
		p.LoadID = strings.TrimSpace(*req.LoadID)
	}

	if err := s.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("Profile updated successfully",
		zap.String("profile_id", p.ID.String()),
		zap.String("role", string(p.Role)),
		zap.String("status", string(p.Status)),
		zap.String("event", "profile_updated"),
	)

	return ToProfileResponse(p), nil
}

func (s *Service) DeleteProfile(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	admin, err := s.requireAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if admin.ProfileID() == id {
		return appErrors.Validation("Admins cannot delete their own profile", nil)
	}

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Profile deleted successfully",
		zap.String("profile_id", id.String()),
		zap.String("deleted_by", admin.ProfileID().String()),
		zap.String("event", "profile_deleted"),
	)
	return nil
}

func (s *Service) ListProfiles(ctx context.Context, caller access.Caller, req *ListProfilesRequest) ([]*ProfileResponse, error) {
	if _, err := s.resolver.Resolve(ctx, caller); err != nil {
		return nil, err
	}
	if req == nil {
		req = &ListProfilesRequest{}
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid filter", err)
	}

	profiles, err := s.profileRepo.List(ctx, &domainProfile.Filter{
		Search: strings.TrimSpace(req.Search),
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]*ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, ToProfileResponse(p))
	}
	return responses, nil
}

// AvailableAccounts lists emails of accounts that have no profile yet.
func (s *Service) AvailableAccounts(ctx context.Context, caller access.Caller) ([]string, error) {
	if _, err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListWithoutProfile(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(accounts))
	for _, a := range accounts {
		if a.Email != "" {
			emails = append(emails, a.Email)
		}
	}
	return emails, nil
}

// SetProfileImage attaches an uploaded file. Admins may change any profile,
// everyone else only their own.
func (s *Service) SetProfileImage(ctx context.Context, caller access.Caller, id uuid.UUID, req *SetImageRequest) (*ProfileResponse, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin && principal.ProfileID() != id {
		return nil, appErrors.Forbidden("Not authorized to change this profile image")
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.blobs.Stat(ctx, req.StorageID); err != nil {
		return nil, err
	}

	url := s.publicBaseURL + filesURLPath + req.StorageID
	p.ImageStorageID = &req.StorageID
	p.ImageURL = &url

	if err := s.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("Profile image updated",
		zap.String("profile_id", p.ID.String()),
		zap.String("storage_id", req.StorageID),
		zap.String("event", "profile_image_updated"),
	)

	return ToProfileResponse(p), nil
}

func (s *Service) requireAdmin(ctx context.Context, caller access.Caller) (*access.Principal, error) {
	principal, err := s.resolver.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin {
		return nil, appErrors.Forbidden("Not authorized")
	}
	return principal, nil
}
