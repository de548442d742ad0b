package dashboard

import (
	domainLoad "freight-tms/internal/domain/load"
	domainProfile "freight-tms/internal/domain/profile"
	domainTask "freight-tms/internal/domain/task"
	"sort"

	"github.com/google/uuid"
)

const noBranch = "N/A"

// Aggregate reduces full snapshots of loads, tasks and profiles to the
// dashboard figures. Ties keep input order.
func Aggregate(loads []*domainLoad.Load, tasks []*domainTask.Task, profiles []*domainProfile.Profile) *MetricsResponse {
	m := &MetricsResponse{
		MonthlyRevenue:    map[string]float64{},
		TopBranch:         noBranch,
		BranchPerformance: []BranchCount{},
		BottomPerformers:  []Performer{},
	}

	type tally struct {
		completed int
		revenue   float64
	}
	byAgent := make(map[uuid.UUID]*tally)
	branchIndex := make(map[domainLoad.Branch]int)

	for _, l := range loads {
		m.TotalRevenue += l.TotalFinalInvoice

		if l.DateClientPaid == nil && l.DateInvoicedClient != nil && *l.DateInvoicedClient != "" {
			m.PendingInvoices++
		}
		if l.Status == domainLoad.StatusActive {
			m.ActiveLoads++
		}
		if l.DateInvoicedClient != nil && *l.DateInvoicedClient != "" {
			m.MonthlyRevenue[monthOf(*l.DateInvoicedClient)] += l.TotalFinalInvoice
		}

		if l.Progress != domainLoad.ProgressDelivered {
			continue
		}
		m.CompletedLoads++

		t, ok := byAgent[l.AssignedAgentID]
		if !ok {
			t = &tally{}
			byAgent[l.AssignedAgentID] = t
		}
		t.completed++
		t.revenue += l.TotalFinalInvoice

		if l.Branch != "" {
			i, ok := branchIndex[l.Branch]
			if !ok {
				i = len(m.BranchPerformance)
				branchIndex[l.Branch] = i
				m.BranchPerformance = append(m.BranchPerformance, BranchCount{Branch: string(l.Branch)})
			}
			m.BranchPerformance[i].CompletedLoads++
		}
	}

	for _, t := range tasks {
		switch t.Status {
		case domainTask.StatusPending:
			m.PendingTasks++
		case domainTask.StatusAssigned:
			m.IncomingTasks++
		case domainTask.StatusCompleted, domainTask.StatusCancelled:
		}
	}

	performers := make([]Performer, 0, len(profiles))
	agents := make([]Performer, 0, len(profiles))
	for _, p := range profiles {
		perf := Performer{Name: p.Name}
		if t, ok := byAgent[p.ID]; ok {
			perf.CompletedLoads = t.completed
			perf.Revenue = t.revenue
		}
		performers = append(performers, perf)
		if p.Role.IsSalesAgent() {
			perf.Role = string(p.Role)
			agents = append(agents, perf)
		}
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].CompletedLoads > performers[j].CompletedLoads
	})
	if len(performers) > 0 {
		top := performers[0]
		m.TopPerformer = &top
	}

	ranked := make([]BranchCount, len(m.BranchPerformance))
	copy(ranked, m.BranchPerformance)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompletedLoads > ranked[j].CompletedLoads
	})
	if len(ranked) > 0 {
		m.TopBranch = ranked[0].Branch
	}

	sort.SliceStable(agents, func(i, j int) bool {
		return agents[i].CompletedLoads < agents[j].CompletedLoads
	})
	if len(agents) > 3 {
		agents = agents[:3]
	}
	m.BottomPerformers = agents

	return m
}

func monthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
