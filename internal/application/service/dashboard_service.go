package service

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/internal/store"
)

// DashboardService aggregates figures for the landing dashboard
type DashboardService struct {
	store *store.Store
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// DashboardSummary is the headline figure set for the dashboard
type DashboardSummary struct {
	TotalItems       int                      `json:"total_items"`
	LowStockCount    int                      `json:"low_stock_count"`
	StockValue       float64                  `json:"stock_value"`
	OpenJobs         int                      `json:"open_jobs"`
	OpenRMAs         int                      `json:"open_rmas"`
	PendingLeaves    int                      `json:"pending_leaves"`
	ActiveContracts  int                      `json:"active_contracts"`
	UpcomingRenewals int                      `json:"upcoming_renewals"`
	OrdersByStatus   map[string]int           `json:"orders_by_status"`
	RecentActivity   []entity.StockTransaction `json:"recent_activity"`
}

// Summary computes the dashboard figures from the current collections
func (s *DashboardService) Summary() DashboardSummary {
	summary := DashboardSummary{
		OrdersByStatus: make(map[string]int),
	}

	items := s.store.ListItems(false)
	summary.TotalItems = len(items)
	summary.LowStockCount = len(s.store.LowStockItems())

	if report, err := s.store.StockValuation(enum.ValuationFIFO); err == nil {
		summary.StockValue = report.TotalValue
	}

	for _, j := range s.store.ListJobs(false) {
		switch j.Status {
		case enum.JobStatusPending, enum.JobStatusInProgress, enum.JobStatusOnHold:
			summary.OpenJobs++
		}
	}

	for _, r := range s.store.ListRMAs() {
		if r.Status != enum.RMAStatusDelivered {
			summary.OpenRMAs++
		}
	}

	for _, l := range s.store.ListLeaves(0) {
		if l.Status == enum.LeaveStatusPending {
			summary.PendingLeaves++
		}
	}

	for _, c := range s.store.ListAMCs() {
		if s.store.IsAMCActive(c) {
			summary.ActiveContracts++
		}
	}
	summary.UpcomingRenewals = len(s.store.UpcomingRenewals(30))

	for _, o := range s.store.ListOrders(false) {
		summary.OrdersByStatus[o.Status.String()]++
	}

	txns := s.store.ListTransactions()
	if len(txns) > 10 {
		txns = txns[:10]
	}
	summary.RecentActivity = txns

	return summary
}
