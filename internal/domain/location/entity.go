package location

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID               uuid.UUID
	BuildingName     string
	StreetAddress    string
	City             string
	State            string
	Zip              string
	Country          string
	Phone            string
	HoursOfOperation string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
