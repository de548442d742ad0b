package load

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew      Status = "New"
	StatusActive   Status = "Active"
	StatusCanceled Status = "Canceled"
	StatusClosed   Status = "Closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusActive, StatusCanceled, StatusClosed:
		return true
	}
	return false
}

// Progress is the operational stage, independent of Status.
type Progress string

const (
	ProgressQuoted    Progress = "Quoted"
	ProgressPlanning  Progress = "Planning"
	ProgressInTransit Progress = "In-Transit"
	ProgressDelivered Progress = "Delivered"
)

func (p Progress) IsValid() bool {
	switch p {
	case ProgressQuoted, ProgressPlanning, ProgressInTransit, ProgressDelivered:
		return true
	}
	return false
}

type TrailerType string

const (
	TrailerVan       TrailerType = "Van"
	TrailerFlatbed   TrailerType = "Flatbed"
	TrailerReefer    TrailerType = "Reefer"
	TrailerContainer TrailerType = "Container"
	TrailerOther     TrailerType = "Other"
)

func (t TrailerType) IsValid() bool {
	switch t {
	case TrailerVan, TrailerFlatbed, TrailerReefer, TrailerContainer, TrailerOther:
		return true
	}
	return false
}

type Branch string

const (
	BranchNasif  Branch = "Nasif's Team"
	BranchRoy    Branch = "Roy's Team"
	BranchAndrew Branch = "Andrew's Team"
	BranchAli    Branch = "Ali's Team"
)

func (b Branch) IsValid() bool {
	switch b {
	case BranchNasif, BranchRoy, BranchAndrew, BranchAli:
		return true
	}
	return false
}

type AuxCharge struct {
	Reason   string  `json:"reason"`
	Quantity float64 `json:"quantity"`
	Charge   float64 `json:"charge"`
}

type Stop struct {
	BuildingName  string
	StreetAddress string
	City          string
	State         string
	Zip           string
	Date          string
	Time          string
}

type CarrierInfo struct {
	CompanyName   string
	Status        string
	StreetAddress string
	City          string
	State         string
	Zip           string
	POC           string
	POCPhone      string
	POCEmail      string
	TruckNumber   *string
	ChassisNumber *string
}

type Financials struct {
	ClientRateCon     float64
	CarrierPayout     float64
	AgentPayout       float64
	GrossProfit       float64
	NetProfit         float64
	TotalFinalInvoice float64
	TotalWeight       float64
	ActualWeight      float64
}

// Milestones are YYYY-MM-DD date stamps; nil means not reached.
type Milestones struct {
	DateQuotedToClient *string
	DateDelivered      *string
	DateInvoicedClient *string
	DateCarrierPaid    *string
	DateAgentPaid      *string
	DateClientPaid     *string
}

// Load is a freight work order. LoadID, TrackingNumber and LoadCount are set
// once at creation and never change.
type Load struct {
	ID             uuid.UUID
	LoadID         string
	LoadCount      int64
	TrackingNumber string

	CustomerBusinessName string
	LastDateFree         *string
	Status               Status
	Progress             Progress
	Commodity            string
	TrailerNumber        *string
	TrailerType          TrailerType
	Layovers             bool

	AssignedAgentID uuid.UUID
	Branch          Branch

	Pickup  Stop
	Dropoff Stop
	Carrier CarrierInfo

	Financials
	AuxCharges []AuxCharge
	Milestones

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FormatLoadID renders sequence n as the L000001 form.
func FormatLoadID(n int64) string {
	return fmt.Sprintf("L%06d", n)
}

// FormatTrackingNumber renders sequence n as the TN000001 form.
func FormatTrackingNumber(n int64) string {
	return fmt.Sprintf("TN%06d", n)
}
