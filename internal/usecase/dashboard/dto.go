package dashboard

type Performer struct {
	Name           string  `json:"name"`
	Role           string  `json:"role,omitempty"`
	CompletedLoads int     `json:"completed_loads"`
	Revenue        float64 `json:"revenue"`
}

type BranchCount struct {
	Branch         string `json:"branch"`
	CompletedLoads int    `json:"completed_loads"`
}

type MetricsResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	PendingInvoices int     `json:"pending_invoices"`
	ActiveLoads     int     `json:"active_loads"`
	CompletedLoads  int     `json:"completed_loads"`
	PendingTasks    int     `json:"pending_tasks"`
	IncomingTasks   int     `json:"incoming_tasks"`

	// MonthlyRevenue is keyed by the YYYY-MM of the client invoice date.
	MonthlyRevenue map[string]float64 `json:"monthly_revenue"`

	TopPerformer      *Performer    `json:"top_performer,omitempty"`
	TopBranch         string        `json:"top_branch"`
	BranchPerformance []BranchCount `json:"branch_performance"`
	BottomPerformers  []Performer   `json:"bottom_performers"`
}
