package load

import (
	"time"

	domainLoad "freight-tms/internal/domain/load"

	"github.com/google/uuid"
)

type StopRequest struct {
	BuildingName  string `json:"building_name" validate:"required,max=255"`
	StreetAddress string `json:"street_address" validate:"required,max=255"`
	City          string `json:"city" validate:"required,max=100"`
	State         string `json:"state" validate:"required,max=100"`
	Zip           string `json:"zip" validate:"required,max=20"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required,max=20"`
}

type CarrierRequest struct {
	CompanyName   string  `json:"company_name" validate:"required,max=255"`
	Status        string  `json:"status" validate:"required,max=50"`
	StreetAddress string  `json:"street_address" validate:"required,max=255"`
	City          string  `json:"city" validate:"required,max=100"`
	State         string  `json:"state" validate:"required,max=100"`
	Zip           string  `json:"zip" validate:"required,max=20"`
	POC           string  `json:"poc" validate:"required,max=255"`
	POCPhone      string  `json:"poc_phone" validate:"required,phone"`
	POCEmail      string  `json:"poc_email" validate:"required,email"`
	TruckNumber   *string `json:"truck_number" validate:"omitempty,max=50"`
	ChassisNumber *string `json:"chassis_number" validate:"omitempty,max=50"`
}

type AuxChargeRequest struct {
	Reason   string  `json:"reason" validate:"required,max=255"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Charge   float64 `json:"charge"`
}

// LoadRequest carries every user-editable load field. It is used for both
// create and update; identity fields are never read from it.
type LoadRequest struct {
	CustomerBusinessName string                 `json:"customer_business_name" validate:"required,max=255"`
	LastDateFree         *string                `json:"last_date_free" validate:"omitempty,datetime=2006-01-02"`
	Status               domainLoad.Status      `json:"load_status" validate:"required,enum"`
	Progress             domainLoad.Progress    `json:"load_progress" validate:"required,enum"`
	Commodity            string                 `json:"load_commodity" validate:"required,max=255"`
	TrailerNumber        *string                `json:"trailer_number" validate:"omitempty,max=50"`
	TrailerType          domainLoad.TrailerType `json:"trailer_type" validate:"required,enum"`
	Layovers             bool                   `json:"layovers"`
	AssignedAgentID      uuid.UUID              `json:"assigned_agent_id" validate:"required"`
	Branch               domainLoad.Branch      `json:"branch" validate:"required,enum"`

	Pickup  StopRequest    `json:"pickup"`
	Dropoff StopRequest    `json:"dropoff"`
	Carrier CarrierRequest `json:"carrier"`

	ClientRateCon     float64 `json:"client_rate_con"`
	CarrierPayout     float64 `json:"carrier_payout"`
	AgentPayout       float64 `json:"agent_payout"`
	GrossProfit       float64 `json:"gross_profit"`
	NetProfit         float64 `json:"net_profit"`
	TotalFinalInvoice float64 `json:"total_final_invoice"`
	TotalWeight       float64 `json:"total_weight" validate:"gte=0"`
	ActualWeight      float64 `json:"actual_weight" validate:"gte=0"`

	AuxCharges []AuxChargeRequest `json:"aux_charges" validate:"omitempty,dive"`

	DateQuotedToClient *string `json:"date_quoted_to_client" validate:"omitempty,datetime=2006-01-02"`
	DateDelivered      *string `json:"date_delivered" validate:"omitempty,datetime=2006-01-02"`
	DateInvoicedClient *string `json:"date_invoiced_client" validate:"omitempty,datetime=2006-01-02"`
	DateCarrierPaid    *string `json:"date_carrier_paid" validate:"omitempty,datetime=2006-01-02"`
	DateAgentPaid      *string `json:"date_agent_paid" validate:"omitempty,datetime=2006-01-02"`
	DateClientPaid     *string `json:"date_client_paid" validate:"omitempty,datetime=2006-01-02"`

	Notes *string `json:"notes" validate:"omitempty,max=5000"`
}

type ListLoadsRequest struct {
	Status   *domainLoad.Status   `form:"status" validate:"omitempty,enum"`
	Progress *domainLoad.Progress `form:"progress" validate:"omitempty,enum"`
}

type ToggleInvoiceRequest struct {
	IsPaid bool `json:"is_paid"`
}

type StopResponse struct {
	BuildingName  string `json:"building_name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

type CarrierResponse struct {
	CompanyName   string  `json:"company_name"`
	Status        string  `json:"status"`
	StreetAddress string  `json:"street_address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Zip           string  `json:"zip"`
	POC           string  `json:"poc"`
	POCPhone      string  `json:"poc_phone"`
	POCEmail      string  `json:"poc_email"`
	TruckNumber   *string `json:"truck_number,omitempty"`
	ChassisNumber *string `json:"chassis_number,omitempty"`
}

type LoadResponse struct {
	ID             uuid.UUID `json:"id"`
	LoadID         string    `json:"load_id"`
	LoadCount      int64     `json:"load_count"`
	TrackingNumber string    `json:"tracking_number"`

	CustomerBusinessName string                 `json:"customer_business_name"`
	LastDateFree         *string                `json:"last_date_free,omitempty"`
	Status               domainLoad.Status      `json:"load_status"`
	Progress             domainLoad.Progress    `json:"load_progress"`
	Commodity            string                 `json:"load_commodity"`
	TrailerNumber        *string                `json:"trailer_number,omitempty"`
	TrailerType          domainLoad.TrailerType `json:"trailer_type"`
	Layovers             bool                   `json:"layovers"`
	AssignedAgentID      uuid.UUID              `json:"assigned_agent_id"`
	Branch               domainLoad.Branch      `json:"branch"`

	Pickup  StopResponse    `json:"pickup"`
	Dropoff StopResponse    `json:"dropoff"`
	Carrier CarrierResponse `json:"carrier"`

	ClientRateCon     float64                `json:"client_rate_con"`
	CarrierPayout     float64                `json:"carrier_payout"`
	AgentPayout       float64                `json:"agent_payout"`
	GrossProfit       float64                `json:"gross_profit"`
	NetProfit         float64                `json:"net_profit"`
	TotalFinalInvoice float64                `json:"total_final_invoice"`
	TotalWeight       float64                `json:"total_weight"`
	ActualWeight      float64                `json:"actual_weight"`
	AuxCharges        []domainLoad.AuxCharge `json:"aux_charges"`

	DateQuotedToClient *string `json:"date_quoted_to_client,omitempty"`
	DateDelivered      *string `json:"date_delivered,omitempty"`
	DateInvoicedClient *string `json:"date_invoiced_client,omitempty"`
	DateCarrierPaid    *string `json:"date_carrier_paid,omitempty"`
	DateAgentPaid      *string `json:"date_agent_paid,omitempty"`
	DateClientPaid     *string `json:"date_client_paid,omitempty"`

	Notes *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MetricsResponse struct {
	Quoted    int `json:"quoted"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

func ToLoadResponse(l *domainLoad.Load) *LoadResponse {
	if l == nil {
		return nil
	}
	aux := l.AuxCharges
	if aux == nil {
		aux = []domainLoad.AuxCharge{}
	}
	return &LoadResponse{
		ID:                   l.ID,
		LoadID:               l.LoadID,
		LoadCount:            l.LoadCount,
		TrackingNumber:       l.TrackingNumber,
		CustomerBusinessName: l.CustomerBusinessName,
		LastDateFree:         l.LastDateFree,
		Status:               l.Status,
		Progress:             l.Progress,
		Commodity:            l.Commodity,
		TrailerNumber:        l.TrailerNumber,
		TrailerType:          l.TrailerType,
		Layovers:             l.Layovers,
		AssignedAgentID:      l.AssignedAgentID,
		Branch:               l.Branch,
		Pickup:               toStopResponse(l.Pickup),
		Dropoff:              toStopResponse(l.Dropoff),
		Carrier: CarrierResponse{
			CompanyName:   l.Carrier.CompanyName,
			Status:        l.Carrier.Status,
			StreetAddress: l.Carrier.StreetAddress,
			City:          l.Carrier.City,
			State:         l.Carrier.State,
			Zip:           l.Carrier.Zip,
			POC:           l.Carrier.POC,
			POCPhone:      l.Carrier.POCPhone,
			POCEmail:      l.Carrier.POCEmail,
			TruckNumber:   l.Carrier.TruckNumber,
			ChassisNumber: l.Carrier.ChassisNumber,
		},
		ClientRateCon:      l.ClientRateCon,
		CarrierPayout:      l.CarrierPayout,
		AgentPayout:        l.AgentPayout,
		GrossProfit:        l.GrossProfit,
		NetProfit:          l.NetProfit,
		TotalFinalInvoice:  l.TotalFinalInvoice,
		TotalWeight:        l.TotalWeight,
		ActualWeight:       l.ActualWeight,
		AuxCharges:         aux,
		DateQuotedToClient: l.DateQuotedToClient,
		DateDelivered:      l.DateDelivered,
		DateInvoicedClient: l.DateInvoicedClient,
		DateCarrierPaid:    l.DateCarrierPaid,
		DateAgentPaid:      l.DateAgentPaid,
		DateClientPaid:     l.DateClientPaid,
		Notes:              l.Notes,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func ToLoadResponses(loads []*domainLoad.Load) []*LoadResponse {
	responses := make([]*LoadResponse, 0, len(loads))
	for _, l := range loads {
		responses = append(responses, ToLoadResponse(l))
	}
	return responses
}

func toStopResponse(s domainLoad.Stop) StopResponse {
	return StopResponse{
		BuildingName:  s.BuildingName,
		StreetAddress: s.StreetAddress,
		City:          s.City,
		State:         s.State,
		Zip:           s.Zip,
		Date:          s.Date,
		Time:          s.Time,
	}
}
