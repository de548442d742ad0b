package load

import (
	domainLoad "freight-tms/internal/domain/load"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"
)

func ValidateLoadRequest(req *LoadRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.Validation("Invalid input", err)
	}
	return nil
}

// canAccess is the read/update gate: admin, manager or the assigned agent.
func canAccess(p *access.Principal, l *domainLoad.Load) bool {
	return p.IsPrivileged() || l.AssignedAgentID == p.ProfileID()
}

func canCreate(p *access.Principal) bool {
	return p.IsAdmin || p.IsManager || p.IsAgent
}

// canSeeAll covers the invoice screen, which support staff work from.
func canSeeAll(p *access.Principal) bool {
	return p.IsAdmin || p.IsManager || p.IsSupport
}

// applyRequest copies every mutable field; identity fields stay untouched.
func applyRequest(l *domainLoad.Load, req *LoadRequest) {
	l.CustomerBusinessName = utils.SanitizeString(req.CustomerBusinessName)
	l.LastDateFree = req.LastDateFree
	l.Status = req.Status
	l.Progress = req.Progress
	l.Commodity = utils.SanitizeString(req.Commodity)
	l.TrailerNumber = utils.SanitizeOptional(req.TrailerNumber)
	l.TrailerType = req.TrailerType
	l.Layovers = req.Layovers
	l.AssignedAgentID = req.AssignedAgentID
	l.Branch = req.Branch

	l.Pickup = toStop(req.Pickup)
	l.Dropoff = toStop(req.Dropoff)
	l.Carrier = domainLoad.CarrierInfo{
		CompanyName:   utils.SanitizeString(req.Carrier.CompanyName),
		Status:        utils.SanitizeString(req.Carrier.Status),
		StreetAddress: utils.SanitizeString(req.Carrier.StreetAddress),
		City:          utils.SanitizeString(req.Carrier.City),
		State:         utils.SanitizeString(req.Carrier.State),
		Zip:           utils.SanitizeString(req.Carrier.Zip),
		POC:           utils.SanitizeString(req.Carrier.POC),
		POCPhone:      utils.SanitizePhone(req.Carrier.POCPhone),
		POCEmail:      utils.SanitizeEmail(req.Carrier.POCEmail),
		TruckNumber:   utils.SanitizeOptional(req.Carrier.TruckNumber),
		ChassisNumber: utils.SanitizeOptional(req.Carrier.ChassisNumber),
	}

	l.Financials = domainLoad.Financials{
		ClientRateCon:     req.ClientRateCon,
		CarrierPayout:     req.CarrierPayout,
		AgentPayout:       req.AgentPayout,
		GrossProfit:       req.GrossProfit,
		NetProfit:         req.NetProfit,
		TotalFinalInvoice: req.TotalFinalInvoice,
		TotalWeight:       req.TotalWeight,
		ActualWeight:      req.ActualWeight,
	}

	l.AuxCharges = make([]domainLoad.AuxCharge, 0, len(req.AuxCharges))
	for _, aux := range req.AuxCharges {
		l.AuxCharges = append(l.AuxCharges, domainLoad.AuxCharge{
			Reason:   utils.SanitizeString(aux.Reason),
			Quantity: aux.Quantity,
			Charge:   aux.Charge,
		})
	}

	l.Milestones = domainLoad.Milestones{
		DateQuotedToClient: req.DateQuotedToClient,
		DateDelivered:      req.DateDelivered,
		DateInvoicedClient: req.DateInvoicedClient,
		DateCarrierPaid:    req.DateCarrierPaid,
		DateAgentPaid:      req.DateAgentPaid,
		DateClientPaid:     req.DateClientPaid,
	}

	if req.Notes != nil {
		notes := utils.SanitizeText(*req.Notes)
		l.Notes = &notes
	} else {
		l.Notes = nil
	}
}

func toStop(s StopRequest) domainLoad.Stop {
	return domainLoad.Stop{
		BuildingName:  utils.SanitizeString(s.BuildingName),
		StreetAddress: utils.SanitizeString(s.StreetAddress),
		City:          utils.SanitizeString(s.City),
		State:         utils.SanitizeString(s.State),
		Zip:           utils.SanitizeString(s.Zip),
		Date:          s.Date,
		Time:          s.Time,
	}
}
