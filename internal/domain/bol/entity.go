package bol

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type PayItem struct {
	Description string  `json:"description"`
	Notes       string  `json:"notes"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

type Party struct {
	CompanyName string
	Address     string
	City        string
	State       string
	Zip         string
}

// BillOfLading snapshots a load at the time it was signed.
type BillOfLading struct {
	ID uuid.UUID

	LoadID          string
	Date            string
	EquipmentType   string
	Weight          string
	EquipmentLength string
	Commodity       string
	Distance        string
	ContainerNumber *string
	TractorNumber   *string

	CarrierName    string
	CarrierAddress string
	CarrierCity    string
	CarrierState   string
	CarrierZip     string
	DOTNumber      string
	MCNumber       string
	DriverName     string

	NotesAndReferences *string

	Pickup   Party
	Delivery Party
	Note     *string

	PayItems   []PayItem
	GrandTotal float64

	SignerName string
	Signature  string
	SignDate   string

	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recalculate derives every pay item amount and the grand total.
// Amounts are rounded to cents.
func (b *BillOfLading) Recalculate() {
	var total float64
	for i := range b.PayItems {
		b.PayItems[i].Amount = roundCents(b.PayItems[i].Quantity * b.PayItems[i].Rate)
		total += b.PayItems[i].Amount
	}
	b.GrandTotal = roundCents(total)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
