package carrier

import (
	"time"

	domainCarrier "freight-tms/internal/domain/carrier"

	"github.com/google/uuid"
)

type CarrierRequest struct {
	CompanyName   string  `json:"company_name" validate:"required,max=255"`
	StreetAddress string  `json:"street_address" validate:"required,max=255"`
	City          string  `json:"city" validate:"required,max=100"`
	State         string  `json:"state" validate:"required,max=100"`
	Zip           string  `json:"zip" validate:"required,max=20"`
	POC           string  `json:"poc" validate:"required,max=255"`
	POCPhone      string  `json:"poc_phone" validate:"required,phone"`
	POCEmail      string  `json:"poc_email" validate:"required,email"`
	TruckNumber   *string `json:"truck_number" validate:"omitempty,max=50"`
	ChassisNumber *string `json:"chassis_number" validate:"omitempty,max=50"`

	MCNumber  string `json:"mc_number" validate:"required,max=20"`
	DOTNumber string `json:"dot_number" validate:"required,max=20"`
	EINNumber string `json:"ein_number" validate:"required,max=20"`

	W9FileID             *string `json:"w9_file_id" validate:"omitempty,uuid"`
	SupportingDocsFileID *string `json:"supporting_docs_file_id" validate:"omitempty,uuid"`

	PaymentOption  domainCarrier.PaymentOption `json:"payment_option" validate:"required,enum"`
	PaymentMethod  domainCarrier.PaymentMethod `json:"payment_method" validate:"required,enum"`
	Website        *string                     `json:"website" validate:"omitempty,url"`
	SaferScoreLink string                      `json:"safer_score_link" validate:"required,url"`
	Status         domainCarrier.Status        `json:"status" validate:"required,enum"`
}

type ListCarriersRequest struct {
	Status *domainCarrier.Status `form:"status" validate:"omitempty,enum"`
}

type AttachFileRequest struct {
	StorageID string `json:"storage_id" validate:"required,uuid"`
}

type CarrierResponse struct {
	ID                   uuid.UUID                   `json:"id"`
	CompanyName          string                      `json:"company_name"`
	StreetAddress        string                      `json:"street_address"`
	City                 string                      `json:"city"`
	State                string                      `json:"state"`
	Zip                  string                      `json:"zip"`
	POC                  string                      `json:"poc"`
	POCPhone             string                      `json:"poc_phone"`
	POCEmail             string                      `json:"poc_email"`
	TruckNumber          *string                     `json:"truck_number,omitempty"`
	ChassisNumber        *string                     `json:"chassis_number,omitempty"`
	MCNumber             string                      `json:"mc_number"`
	DOTNumber            string                      `json:"dot_number"`
	EINNumber            string                      `json:"ein_number"`
	W9FileID             *string                     `json:"w9_file_id,omitempty"`
	SupportingDocsFileID *string                     `json:"supporting_docs_file_id,omitempty"`
	PaymentOption        domainCarrier.PaymentOption `json:"payment_option"`
	PaymentMethod        domainCarrier.PaymentMethod `json:"payment_method"`
	Website              *string                     `json:"website,omitempty"`
	SaferScoreLink       string                      `json:"safer_score_link"`
	Status               domainCarrier.Status        `json:"status"`
	CreatedBy            uuid.UUID                   `json:"created_by"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            time.Time                   `json:"updated_at"`
}

func ToCarrierResponse(c *domainCarrier.Carrier) *CarrierResponse {
	if c == nil {
		return nil
	}
	return &CarrierResponse{
		ID:                   c.ID,
		CompanyName:          c.CompanyName,
		StreetAddress:        c.StreetAddress,
		City:                 c.City,
		State:                c.State,
		Zip:                  c.Zip,
		POC:                  c.POC,
		POCPhone:             c.POCPhone,
		POCEmail:             c.POCEmail,
		TruckNumber:          c.TruckNumber,
		ChassisNumber:        c.ChassisNumber,
		MCNumber:             c.MCNumber,
		DOTNumber:            c.DOTNumber,
		EINNumber:            c.EINNumber,
		W9FileID:             c.W9FileID,
		SupportingDocsFileID: c.SupportingDocsFileID,
		PaymentOption:        c.PaymentOption,
		PaymentMethod:        c.PaymentMethod,
		Website:              c.Website,
		SaferScoreLink:       c.SaferScoreLink,
		Status:               c.Status,
		CreatedBy:            c.CreatedBy,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
