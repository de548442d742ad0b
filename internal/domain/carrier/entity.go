package carrier

import (
	"time"

	"github.com/google/uuid"
)

type PaymentOption string

const (
	PaymentStandard PaymentOption = "Standard"
	PaymentNet30    PaymentOption = "Net30"
	PaymentQuickPay PaymentOption = "Quick-Pay 5%"
)

func (p PaymentOption) IsValid() bool {
	switch p {
	case PaymentStandard, PaymentNet30, PaymentQuickPay:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodACH          PaymentMethod = "ACH"
	MethodPaperCheck   PaymentMethod = "Paper-Check"
	MethodWire         PaymentMethod = "Wire $25-$90 fee"
	MethodZelle        PaymentMethod = "Zelle 5% fee"
	MethodCashappVenmo PaymentMethod = "Cashapp or Venmo 7% Fee"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodACH, MethodPaperCheck, MethodWire, MethodZelle, MethodCashappVenmo:
		return true
	}
	return false
}

type Status string

const (
	StatusApproved Status = "Approved"
	StatusDoNotUse Status = "DO NOT USE"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusApproved, StatusDoNotUse:
		return true
	}
	return false
}

type Carrier struct {
	ID uuid.UUID

	CompanyName   string
	StreetAddress string
	City          string
	State         string
	Zip           string
	POC           string
	POCPhone      string
	POCEmail      string
	TruckNumber   *string
	ChassisNumber *string

	MCNumber  string
	DOTNumber string
	EINNumber string

	W9FileID             *string
	SupportingDocsFileID *string

	PaymentOption  PaymentOption
	PaymentMethod  PaymentMethod
	Website        *string
	SaferScoreLink string
	Status         Status

	// CreatedBy is the account that registered the carrier.
	CreatedBy uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}
