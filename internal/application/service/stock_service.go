package service

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/internal/store"
)

// StockService handles the stock ledger: issuing, returning and the
// derived reports
type StockService struct {
	store *store.Store
}

// NewStockService creates a new stock service
func NewStockService(st *store.Store) *StockService {
	return &StockService{store: st}
}

// IssueStock issues units of an item to a user
func (s *StockService) IssueStock(input store.IssueStockInput) (entity.StockTransaction, error) {
	return s.store.IssueStock(input)
}

// ReturnStock takes previously issued units back
func (s *StockService) ReturnStock(input store.ReturnStockInput) (entity.StockTransaction, error) {
	return s.store.ReturnStock(input)
}

// AvailableStock returns how many units of an item are on the shelf
func (s *StockService) AvailableStock(itemID int) int {
	return s.store.AvailableStock(itemID)
}

// UserStock returns everything a user currently holds
func (s *StockService) UserStock(userID int) []store.UserHolding {
	return s.store.UserStock(userID)
}

// LowStockItems returns items at or below their reorder level
func (s *StockService) LowStockItems() []entity.Item {
	return s.store.LowStockItems()
}

// Valuation values the current stock with the requested method
func (s *StockService) Valuation(method enum.ValuationMethod) (store.ValuationReport, error) {
	return s.store.StockValuation(method)
}

// SummaryByCategory aggregates stock figures per category
func (s *StockService) SummaryByCategory() []store.CategorySummary {
	return s.store.StockSummaryByCategory()
}

// ListTransactions returns the full ledger, newest first
func (s *StockService) ListTransactions() []entity.StockTransaction {
	return s.store.ListTransactions()
}
