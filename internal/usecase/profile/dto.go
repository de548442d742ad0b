package profile

import (
	"time"

	domainProfile "freight-tms/internal/domain/profile"

	"github.com/google/uuid"
)

type CreateProfileRequest struct {
	Name           string                 `json:"name" validate:"required,min=1,max=255"`
	Email          string                 `json:"email" validate:"required,email"`
	Phone          *string                `json:"phone" validate:"omitempty,phone"`
	Manager        *domainProfile.Manager `json:"manager" validate:"omitempty,enum"`
	Role           domainProfile.Role     `json:"role" validate:"required,enum"`
	Status         domainProfile.Status   `json:"status" validate:"omitempty,enum"`
	CommissionRate *float64               `json:"commission_rate" validate:"omitempty,gte=0,lte=100"`
	Salary         *string                `json:"salary" validate:"omitempty,max=50"`
	LoadID         *string                `json:"load_id" validate:"omitempty,max=20"`
}

// UpdateProfileRequest is a patch: nil fields are left alone.
type UpdateProfileRequest struct {
	Name           *string                `json:"name" validate:"omitempty,min=1,max=255"`
	Email          *string                `json:"email" validate:"omitempty,email"`
	Phone          *string                `json:"phone" validate:"omitempty,phone"`
	Manager        *domainProfile.Manager `json:"manager" validate:"omitempty,enum"`
	Role           *domainProfile.Role    `json:"role" validate:"omitempty,enum"`
	Status         *domainProfile.Status  `json:"status" validate:"omitempty,enum"`
	CommissionRate *float64               `json:"commission_rate" validate:"omitempty,gte=0,lte=100"`
	Salary         *string                `json:"salary" validate:"omitempty,max=50"`
	LoadID         *string                `json:"load_id" validate:"omitempty,max=20"`
}

type ListProfilesRequest struct {
	Search string                `form:"search" validate:"max=255"`
	Role   *domainProfile.Role   `form:"role" validate:"omitempty,enum"`
	Status *domainProfile.Status `form:"status" validate:"omitempty,enum"`
}

type SetImageRequest struct {
	StorageID string `json:"storage_id" validate:"required,uuid"`
}

type ProfileResponse struct {
	ID             uuid.UUID              `json:"id"`
	AccountID      uuid.UUID              `json:"account_id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Phone          *string                `json:"phone,omitempty"`
	Manager        *domainProfile.Manager `json:"manager,omitempty"`
	Role           domainProfile.Role     `json:"role"`
	Status         domainProfile.Status   `json:"status"`
	CommissionRate *float64               `json:"commission_rate,omitempty"`
	Salary         *string                `json:"salary,omitempty"`
	LoadID         string                 `json:"load_id"`
	ImageStorageID *string                `json:"image_storage_id,omitempty"`
	ImageURL       *string                `json:"image_url,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

func ToProfileResponse(p *domainProfile.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:             p.ID,
		AccountID:      p.AccountID,
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		Manager:        p.Manager,
		Role:           p.Role,
		Status:         p.Status,
		CommissionRate: p.CommissionRate,
		Salary:         p.Salary,
		LoadID:         p.LoadID,
		ImageStorageID: p.ImageStorageID,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt,
	}
}
