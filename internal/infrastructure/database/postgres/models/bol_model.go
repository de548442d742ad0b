package models

import (
	"time"

	"github.com/google/uuid"
)

type PartyColumns struct {
	CompanyName string `gorm:"type:varchar(255)"`
	Address     string `gorm:"type:varchar(255)"`
	City        string `gorm:"type:varchar(100)"`
	State       string `gorm:"type:varchar(100)"`
	Zip         string `gorm:"type:varchar(20)"`
}

// PayItemJSON is one element of the pay_items jsonb column.
type PayItemJSON struct {
	Description string  `json:"description"`
	Notes       string  `json:"notes"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

type BOLModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LoadID          string    `gorm:"type:varchar(20);not null;index"`
	Date            string    `gorm:"type:varchar(10)"`
	EquipmentType   string    `gorm:"type:varchar(100)"`
	Weight          string    `gorm:"type:varchar(50)"`
	EquipmentLength string    `gorm:"type:varchar(50)"`
	Commodity       string    `gorm:"type:varchar(255)"`
	Distance        string    `gorm:"type:varchar(50)"`
	ContainerNumber *string   `gorm:"type:varchar(50)"`
	TractorNumber   *string   `gorm:"type:varchar(50)"`

	CarrierName    string `gorm:"type:varchar(255)"`
	CarrierAddress string `gorm:"type:varchar(255)"`
	CarrierCity    string `gorm:"type:varchar(100)"`
	CarrierState   string `gorm:"type:varchar(100)"`
	CarrierZip     string `gorm:"type:varchar(20)"`
	DOTNumber      string `gorm:"type:varchar(20)"`
	MCNumber       string `gorm:"type:varchar(20)"`
	DriverName     string `gorm:"type:varchar(255)"`

	NotesAndReferences *string `gorm:"type:text"`

	Pickup   PartyColumns `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery PartyColumns `gorm:"embedded;embeddedPrefix:delivery_"`
	Note     *string      `gorm:"type:text"`

	PayItems   []PayItemJSON `gorm:"type:jsonb;serializer:json"`
	GrandTotal float64       `gorm:"type:numeric(12,2);not null;default:0"`

	SignerName string `gorm:"type:varchar(255)"`
	Signature  string `gorm:"type:text"`
	SignDate   string `gorm:"type:varchar(10)"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (BOLModel) TableName() string {
	return "bols"
}
