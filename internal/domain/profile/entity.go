package profile

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin             Role = "admin"
	RoleManager           Role = "manager"
	RoleBrokerSalesAgent  Role = "Broker Sales Agent"
	RoleCarrierSalesAgent Role = "Carrier Sales Agent"
	RoleSupport           Role = "Support"
	RoleAccounting        Role = "Accounting"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleBrokerSalesAgent, RoleCarrierSalesAgent, RoleSupport, RoleAccounting:
		return true
	}
	return false
}

// IsSalesAgent reports whether the role owns and works loads.
func (r Role) IsSalesAgent() bool {
	switch r {
	case RoleBrokerSalesAgent, RoleCarrierSalesAgent:
		return true
	case RoleAdmin, RoleManager, RoleSupport, RoleAccounting:
		return false
	}
	return false
}

type Manager string

const (
	ManagerHector Manager = "Hector"
	ManagerRoy    Manager = "Roy"
	ManagerNasif  Manager = "Nasif"
	ManagerAli    Manager = "Ali"
	ManagerAndrew Manager = "Andrew"
)

func (m Manager) IsValid() bool {
	switch m {
	case ManagerHector, ManagerRoy, ManagerNasif, ManagerAli, ManagerAndrew:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// Profile is the application-level user record, linked one-to-one to an account.
type Profile struct {
	ID        uuid.UUID
	AccountID uuid.UUID

	Name    string
	Email   string
	Phone   *string
	Manager *Manager
	Role    Role
	Status  Status

	CommissionRate *float64
	Salary         *string

	// LoadID is the agent's human-readable sequence number (L000001 style).
	LoadID string

	ImageStorageID *string
	ImageURL       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
