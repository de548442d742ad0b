package bol

import (
	"time"

	domainBOL "freight-tms/internal/domain/bol"

	"github.com/google/uuid"
)

type PartyRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=255"`
	Address     string `json:"address" validate:"required,max=255"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,max=100"`
	Zip         string `json:"zip" validate:"required,max=20"`
}

// PayItemRequest carries no amount: it is always derived from quantity and rate.
type PayItemRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Notes       string  `json:"notes" validate:"max=1000"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Rate        float64 `json:"rate" validate:"gte=0"`
}

type BOLRequest struct {
	LoadID          string  `json:"load_id" validate:"required,max=20"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	EquipmentType   string  `json:"equipment_type" validate:"required,max=100"`
	Weight          string  `json:"weight" validate:"required,max=50"`
	EquipmentLength string  `json:"equipment_length" validate:"required,max=50"`
	Commodity       string  `json:"commodity" validate:"required,max=255"`
	Distance        string  `json:"distance" validate:"required,max=50"`
	ContainerNumber *string `json:"container_number" validate:"omitempty,max=50"`
	TractorNumber   *string `json:"tractor_number" validate:"omitempty,max=50"`

	CarrierName    string `json:"carrier_name" validate:"required,max=255"`
	CarrierAddress string `json:"carrier_address" validate:"required,max=255"`
	CarrierCity    string `json:"carrier_city" validate:"required,max=100"`
	CarrierState   string `json:"carrier_state" validate:"required,max=100"`
	CarrierZip     string `json:"carrier_zip" validate:"required,max=20"`
	DOTNumber      string `json:"dot_number" validate:"required,max=20"`
	MCNumber       string `json:"mc_number" validate:"required,max=20"`
	DriverName     string `json:"driver_name" validate:"required,max=255"`

	NotesAndReferences *string `json:"notes_and_references" validate:"omitempty,max=2000"`

	Pickup   PartyRequest `json:"pickup"`
	Delivery PartyRequest `json:"delivery"`
	Note     *string      `json:"note" validate:"omitempty,max=2000"`

	PayItems []PayItemRequest `json:"pay_items" validate:"dive"`

	SignerName string `json:"signer_name" validate:"required,max=255"`
	Signature  string `json:"signature" validate:"required"`
	SignDate   string `json:"sign_date" validate:"required,datetime=2006-01-02"`
}

type PartyResponse struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
}

type BOLResponse struct {
	ID                 uuid.UUID           `json:"id"`
	LoadID             string              `json:"load_id"`
	Date               string              `json:"date"`
	EquipmentType      string              `json:"equipment_type"`
	Weight             string              `json:"weight"`
	EquipmentLength    string              `json:"equipment_length"`
	Commodity          string              `json:"commodity"`
	Distance           string              `json:"distance"`
	ContainerNumber    *string             `json:"container_number,omitempty"`
	TractorNumber      *string             `json:"tractor_number,omitempty"`
	CarrierName        string              `json:"carrier_name"`
	CarrierAddress     string              `json:"carrier_address"`
	CarrierCity        string              `json:"carrier_city"`
	CarrierState       string              `json:"carrier_state"`
	CarrierZip         string              `json:"carrier_zip"`
	DOTNumber          string              `json:"dot_number"`
	MCNumber           string              `json:"mc_number"`
	DriverName         string              `json:"driver_name"`
	NotesAndReferences *string             `json:"notes_and_references,omitempty"`
	Pickup             PartyResponse       `json:"pickup"`
	Delivery           PartyResponse       `json:"delivery"`
	Note               *string             `json:"note,omitempty"`
	PayItems           []domainBOL.PayItem `json:"pay_items"`
	GrandTotal         float64             `json:"grand_total"`
	SignerName         string              `json:"signer_name"`
	Signature          string              `json:"signature"`
	SignDate           string              `json:"sign_date"`
	CreatedBy          uuid.UUID           `json:"created_by"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func toPartyResponse(p domainBOL.Party) PartyResponse {
	return PartyResponse(p)
}

func ToBOLResponse(b *domainBOL.BillOfLading) *BOLResponse {
	if b == nil {
		return nil
	}
	items := b.PayItems
	if items == nil {
		items = []domainBOL.PayItem{}
	}
	return &BOLResponse{
		ID:                 b.ID,
		LoadID:             b.LoadID,
		Date:               b.Date,
		EquipmentType:      b.EquipmentType,
		Weight:             b.Weight,
		EquipmentLength:    b.EquipmentLength,
		Commodity:          b.Commodity,
		Distance:           b.Distance,
		ContainerNumber:    b.ContainerNumber,
		TractorNumber:      b.TractorNumber,
		CarrierName:        b.CarrierName,
		CarrierAddress:     b.CarrierAddress,
		CarrierCity:        b.CarrierCity,
		CarrierState:       b.CarrierState,
		CarrierZip:         b.CarrierZip,
		DOTNumber:          b.DOTNumber,
		MCNumber:           b.MCNumber,
		DriverName:         b.DriverName,
		NotesAndReferences: b.NotesAndReferences,
		Pickup:             toPartyResponse(b.Pickup),
		Delivery:           toPartyResponse(b.Delivery),
		Note:               b.Note,
		PayItems:           items,
		GrandTotal:         b.GrandTotal,
		SignerName:         b.SignerName,
		Signature:          b.Signature,
		SignDate:           b.SignDate,
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
