package location

import (
	"time"

	domainLocation "freight-tms/internal/domain/location"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	BuildingName     string `json:"building_name" validate:"required,max=255"`
	StreetAddress    string `json:"street_address" validate:"required,max=255"`
	City             string `json:"city" validate:"required,max=100"`
	State            string `json:"state" validate:"required,max=100"`
	Zip              string `json:"zip" validate:"required,max=20"`
	Country          string `json:"country" validate:"required,max=100"`
	Phone            string `json:"phone" validate:"required,phone"`
	HoursOfOperation string `json:"hours_of_operation" validate:"required,max=255"`
}

type UpdateLocationRequest struct {
	BuildingName     *string `json:"building_name" validate:"omitempty,min=1,max=255"`
	StreetAddress    *string `json:"street_address" validate:"omitempty,max=255"`
	City             *string `json:"city" validate:"omitempty,max=100"`
	State            *string `json:"state" validate:"omitempty,max=100"`
	Zip              *string `json:"zip" validate:"omitempty,max=20"`
	Country          *string `json:"country" validate:"omitempty,max=100"`
	Phone            *string `json:"phone" validate:"omitempty,phone"`
	HoursOfOperation *string `json:"hours_of_operation" validate:"omitempty,max=255"`
}

type LocationResponse struct {
	ID               uuid.UUID `json:"id"`
	BuildingName     string    `json:"building_name"`
	StreetAddress    string    `json:"street_address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Zip              string    `json:"zip"`
	Country          string    `json:"country"`
	Phone            string    `json:"phone"`
	HoursOfOperation string    `json:"hours_of_operation"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToLocationResponse(l *domainLocation.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		ID:               l.ID,
		BuildingName:     l.BuildingName,
		StreetAddress:    l.StreetAddress,
		City:             l.City,
		State:            l.State,
		Zip:              l.Zip,
		Country:          l.Country,
		Phone:            l.Phone,
		HoursOfOperation: l.HoursOfOperation,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
