package client

import (
	"time"

	domainClient "freight-tms/internal/domain/client"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	BusinessType domainClient.BusinessType `json:"business_type" validate:"required,enum"`
	BusinessName string                    `json:"business_name" validate:"required,max=255"`

	StreetAddress string `json:"street_address" validate:"required,max=255"`
	City          string `json:"city" validate:"required,max=100"`
	State         string `json:"state" validate:"required,max=100"`
	Zip           string `json:"zip" validate:"required,max=20"`
	Country       string `json:"country" validate:"required,max=100"`

	EIN string  `json:"ein" validate:"required,max=20"`
	DOT *string `json:"dot" validate:"omitempty,max=20"`
	MC  *string `json:"mc" validate:"omitempty,max=20"`

	POCName  string `json:"poc_name" validate:"required,max=255"`
	POCDob   string `json:"poc_dob" validate:"required,datetime=2006-01-02"`
	POCPhone string `json:"poc_phone" validate:"required,phone"`

	CompanyPhone         *string `json:"company_phone" validate:"omitempty,phone"`
	CompanyEmail         *string `json:"company_email" validate:"omitempty,email"`
	AccountsPayableEmail *string `json:"accounts_payable_email" validate:"omitempty,email"`

	Factorable     bool    `json:"factorable"`
	CreditApproved float64 `json:"credit_approved" validate:"gte=0"`
	CreditUsed     float64 `json:"credit_used" validate:"gte=0"`

	DocumentsStorageID *string `json:"documents_storage_id" validate:"omitempty,uuid"`
}

// UpdateClientRequest is a patch: nil fields are left alone.
type UpdateClientRequest struct {
	BusinessType *domainClient.BusinessType `json:"business_type" validate:"omitempty,enum"`
	BusinessName *string                    `json:"business_name" validate:"omitempty,min=1,max=255"`

	StreetAddress *string `json:"street_address" validate:"omitempty,max=255"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,max=100"`
	Zip           *string `json:"zip" validate:"omitempty,max=20"`
	Country       *string `json:"country" validate:"omitempty,max=100"`

	EIN *string `json:"ein" validate:"omitempty,max=20"`
	DOT *string `json:"dot" validate:"omitempty,max=20"`
	MC  *string `json:"mc" validate:"omitempty,max=20"`

	POCName  *string `json:"poc_name" validate:"omitempty,max=255"`
	POCDob   *string `json:"poc_dob" validate:"omitempty,datetime=2006-01-02"`
	POCPhone *string `json:"poc_phone" validate:"omitempty,phone"`

	CompanyPhone         *string `json:"company_phone" validate:"omitempty,phone"`
	CompanyEmail         *string `json:"company_email" validate:"omitempty,email"`
	AccountsPayableEmail *string `json:"accounts_payable_email" validate:"omitempty,email"`

	Factorable     *bool    `json:"factorable"`
	CreditApproved *float64 `json:"credit_approved" validate:"omitempty,gte=0"`
	CreditUsed     *float64 `json:"credit_used" validate:"omitempty,gte=0"`
}

type ListClientsRequest struct {
	BusinessType *domainClient.BusinessType `form:"business_type" validate:"omitempty,enum"`
	Search       string                     `form:"search" validate:"max=255"`
}

type AttachDocumentsRequest struct {
	StorageID string `json:"storage_id" validate:"required,uuid"`
}

type ClientResponse struct {
	ID                   uuid.UUID                 `json:"id"`
	BusinessType         domainClient.BusinessType `json:"business_type"`
	BusinessName         string                    `json:"business_name"`
	StreetAddress        string                    `json:"street_address"`
	City                 string                    `json:"city"`
	State                string                    `json:"state"`
	Zip                  string                    `json:"zip"`
	Country              string                    `json:"country"`
	EIN                  string                    `json:"ein"`
	DOT                  *string                   `json:"dot,omitempty"`
	MC                   *string                   `json:"mc,omitempty"`
	POCName              string                    `json:"poc_name"`
	POCDob               string                    `json:"poc_dob"`
	POCPhone             string                    `json:"poc_phone"`
	CompanyPhone         *string                   `json:"company_phone,omitempty"`
	CompanyEmail         *string                   `json:"company_email,omitempty"`
	AccountsPayableEmail *string                   `json:"accounts_payable_email,omitempty"`
	Factorable           bool                      `json:"factorable"`
	CreditApproved       float64                   `json:"credit_approved"`
	CreditUsed           float64                   `json:"credit_used"`
	DocumentsStorageID   *string                   `json:"documents_storage_id,omitempty"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

func ToClientResponse(c *domainClient.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:                   c.ID,
		BusinessType:         c.BusinessType,
		BusinessName:         c.BusinessName,
		StreetAddress:        c.StreetAddress,
		City:                 c.City,
		State:                c.State,
		Zip:                  c.Zip,
		Country:              c.Country,
		EIN:                  c.EIN,
		DOT:                  c.DOT,
		MC:                   c.MC,
		POCName:              c.POCName,
		POCDob:               c.POCDob,
		POCPhone:             c.POCPhone,
		CompanyPhone:         c.CompanyPhone,
		CompanyEmail:         c.CompanyEmail,
		AccountsPayableEmail: c.AccountsPayableEmail,
		Factorable:           c.Factorable,
		CreditApproved:       c.CreditApproved,
		CreditUsed:           c.CreditUsed,
		DocumentsStorageID:   c.DocumentsStorageID,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
