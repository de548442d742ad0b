package models

import (
	"time"

	"github.com/google/uuid"
)

type StopColumns struct {
	BuildingName  string `gorm:"type:varchar(255)"`
	StreetAddress string `gorm:"type:varchar(255)"`
	City          string `gorm:"type:varchar(100)"`
	State         string `gorm:"type:varchar(100)"`
	Zip           string `gorm:"type:varchar(20)"`
	Date          string `gorm:"type:varchar(10)"`
	Time          string `gorm:"type:varchar(10)"`
}

type CarrierColumns struct {
	CompanyName   string  `gorm:"type:varchar(255)"`
	Status        string  `gorm:"type:varchar(50)"`
	StreetAddress string  `gorm:"type:varchar(255)"`
	City          string  `gorm:"type:varchar(100)"`
	State         string  `gorm:"type:varchar(100)"`
	Zip           string  `gorm:"type:varchar(20)"`
	POC           string  `gorm:"type:varchar(255)"`
	POCPhone      string  `gorm:"type:varchar(30)"`
	POCEmail      string  `gorm:"type:varchar(255)"`
	TruckNumber   *string `gorm:"type:varchar(50)"`
	ChassisNumber *string `gorm:"type:varchar(50)"`
}

// AuxChargeJSON is one element of the aux_charges jsonb column.
type AuxChargeJSON struct {
	Reason   string  `json:"reason"`
	Quantity float64 `json:"quantity"`
	Charge   float64 `json:"charge"`
}

type LoadModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LoadID         string    `gorm:"type:varchar(20);not null;index"`
	LoadCount      int64     `gorm:"not null"`
	TrackingNumber string    `gorm:"type:varchar(20);not null"`

	CustomerBusinessName string  `gorm:"type:varchar(255);not null"`
	LastDateFree         *string `gorm:"type:varchar(10)"`
	Status               string  `gorm:"type:varchar(20);not null;index"`
	Progress             string  `gorm:"type:varchar(20);not null;index"`
	Commodity            string  `gorm:"type:varchar(255)"`
	TrailerNumber        *string `gorm:"type:varchar(50)"`
	TrailerType          string  `gorm:"type:varchar(20)"`
	Layovers             bool    `gorm:"not null;default:false"`

	AssignedAgentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Branch          string    `gorm:"type:varchar(50)"`

	Pickup  StopColumns    `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff StopColumns    `gorm:"embedded;embeddedPrefix:dropoff_"`
	Carrier CarrierColumns `gorm:"embedded;embeddedPrefix:carrier_"`

	ClientRateCon     float64 `gorm:"type:numeric(12,2);not null;default:0"`
	CarrierPayout     float64 `gorm:"type:numeric(12,2);not null;default:0"`
	AgentPayout       float64 `gorm:"type:numeric(12,2);not null;default:0"`
	GrossProfit       float64 `gorm:"type:numeric(12,2);not null;default:0"`
	NetProfit         float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TotalFinalInvoice float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TotalWeight       float64 `gorm:"type:numeric(12,2);not null;default:0"`
	ActualWeight      float64 `gorm:"type:numeric(12,2);not null;default:0"`

	AuxCharges []AuxChargeJSON `gorm:"type:jsonb;serializer:json"`

	DateQuotedToClient *string `gorm:"type:varchar(10)"`
	DateDelivered      *string `gorm:"type:varchar(10)"`
	DateInvoicedClient *string `gorm:"type:varchar(10)"`
	DateCarrierPaid    *string `gorm:"type:varchar(10)"`
	DateAgentPaid      *string `gorm:"type:varchar(10)"`
	DateClientPaid     *string `gorm:"type:varchar(10)"`

	Notes *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (LoadModel) TableName() string {
	return "loads"
}
