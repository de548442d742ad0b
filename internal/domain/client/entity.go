package client

import (
	"time"

	"github.com/google/uuid"
)

type BusinessType string

const (
	BusinessCarrier          BusinessType = "Carrier"
	BusinessShipper          BusinessType = "Shipper"
	BusinessFreightForwarder BusinessType = "Freight-Forwarder"
	BusinessCoBroker         BusinessType = "Co-Broker"
)

func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessCarrier, BusinessShipper, BusinessFreightForwarder, BusinessCoBroker:
		return true
	}
	return false
}

type Client struct {
	ID           uuid.UUID
	BusinessType BusinessType
	BusinessName string

	StreetAddress string
	City          string
	State         string
	Zip           string
	Country       string

	EIN string
	DOT *string
	MC  *string

	POCName  string
	POCDob   string
	POCPhone string

	CompanyPhone         *string
	CompanyEmail         *string
	AccountsPayableEmail *string

	Factorable     bool
	CreditApproved float64
	CreditUsed     float64

	DocumentsStorageID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
