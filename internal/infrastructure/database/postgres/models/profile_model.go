package models

import (
	"time"

	"github.com/google/uuid"
)

type ProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	Phone          *string   `gorm:"type:varchar(30)"`
	Manager        *string   `gorm:"type:varchar(50)"`
	Role           string    `gorm:"type:varchar(50);not null;index"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active'"`
	CommissionRate *float64  `gorm:"type:numeric(6,4)"`
	Salary         *string   `gorm:"type:varchar(50)"`
	LoadID         string    `gorm:"type:varchar(20);not null"`
	ImageStorageID *string   `gorm:"type:varchar(255)"`
	ImageURL       *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
