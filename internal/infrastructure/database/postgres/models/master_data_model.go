package models

import (
	"time"

	"github.com/google/uuid"
)

type ClientModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BusinessType         string    `gorm:"type:varchar(30);not null;index"`
	BusinessName         string    `gorm:"type:varchar(255);not null"`
	StreetAddress        string    `gorm:"type:varchar(255)"`
	City                 string    `gorm:"type:varchar(100)"`
	State                string    `gorm:"type:varchar(100)"`
	Zip                  string    `gorm:"type:varchar(20)"`
	Country              string    `gorm:"type:varchar(100)"`
	EIN                  string    `gorm:"type:varchar(20)"`
	DOT                  *string   `gorm:"type:varchar(20)"`
	MC                   *string   `gorm:"type:varchar(20)"`
	POCName              string    `gorm:"type:varchar(255)"`
	POCDob               string    `gorm:"type:varchar(10)"`
	POCPhone             string    `gorm:"type:varchar(30)"`
	CompanyPhone         *string   `gorm:"type:varchar(30)"`
	CompanyEmail         *string   `gorm:"type:varchar(255)"`
	AccountsPayableEmail *string   `gorm:"type:varchar(255)"`
	Factorable           bool      `gorm:"not null;default:false"`
	CreditApproved       float64   `gorm:"type:numeric(12,2);not null;default:0"`
	CreditUsed           float64   `gorm:"type:numeric(12,2);not null;default:0"`
	DocumentsStorageID   *string   `gorm:"type:varchar(255)"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

func (ClientModel) TableName() string {
	return "clients"
}

type LocationModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BuildingName     string    `gorm:"type:varchar(255);not null"`
	StreetAddress    string    `gorm:"type:varchar(255)"`
	City             string    `gorm:"type:varchar(100);index"`
	State            string    `gorm:"type:varchar(100)"`
	Zip              string    `gorm:"type:varchar(20)"`
	Country          string    `gorm:"type:varchar(100)"`
	Phone            string    `gorm:"type:varchar(30)"`
	HoursOfOperation string    `gorm:"type:varchar(255)"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (LocationModel) TableName() string {
	return "locations"
}

type CarrierModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompanyName          string    `gorm:"type:varchar(255);not null"`
	StreetAddress        string    `gorm:"type:varchar(255)"`
	City                 string    `gorm:"type:varchar(100)"`
	State                string    `gorm:"type:varchar(100)"`
	Zip                  string    `gorm:"type:varchar(20)"`
	POC                  string    `gorm:"type:varchar(255)"`
	POCPhone             string    `gorm:"type:varchar(30)"`
	POCEmail             string    `gorm:"type:varchar(255)"`
	TruckNumber          *string   `gorm:"type:varchar(50)"`
	ChassisNumber        *string   `gorm:"type:varchar(50)"`
	MCNumber             string    `gorm:"type:varchar(20)"`
	DOTNumber            string    `gorm:"type:varchar(20)"`
	EINNumber            string    `gorm:"type:varchar(20)"`
	W9FileID             *string   `gorm:"column:w9_file_id;type:varchar(255)"`
	SupportingDocsFileID *string   `gorm:"type:varchar(255)"`
	PaymentOption        string    `gorm:"type:varchar(30);not null"`
	PaymentMethod        string    `gorm:"type:varchar(50);not null"`
	Website              *string   `gorm:"type:text"`
	SaferScoreLink       string    `gorm:"type:text"`
	Status               string    `gorm:"type:varchar(20);not null;index"`
	CreatedBy            uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

func (CarrierModel) TableName() string {
	return "carriers"
}
