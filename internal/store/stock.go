package store

import (
	"fmt"
	"sort"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// IssueStockInput carries the fields for issuing stock to a user
type IssueStockInput struct {
	ItemID        int
	UserID        int
	Quantity      int
	SerialNumbers []string
	BatchNumber   string
	JobID         string
	Notes         string
}

// ReturnStockInput carries the fields for returning issued stock
type ReturnStockInput struct {
	ItemID        int
	UserID        int
	Quantity      int
	SerialNumbers []string
	Condition     string
	Notes         string
}

// UserHolding aggregates what a user currently holds of one item
type UserHolding struct {
	ItemID        int      `json:"item_id"`
	ItemName      string   `json:"item_name"`
	Quantity      int      `json:"quantity"`
	SerialNumbers []string `json:"serial_numbers,omitempty"`
}

// ValuationLine is one item's contribution to a stock valuation
type ValuationLine struct {
	ItemID    int     `json:"item_id"`
	ItemName  string  `json:"item_name"`
	Available int     `json:"available"`
	UnitCost  float64 `json:"unit_cost"`
	Value     float64 `json:"value"`
}

// ValuationReport is the result of a stock valuation run
type ValuationReport struct {
	Method     enum.ValuationMethod `json:"method"`
	Lines      []ValuationLine      `json:"lines"`
	TotalValue float64              `json:"total_value"`
}

// CategorySummary aggregates stock figures for one item category
type CategorySummary struct {
	Category   string  `json:"category"`
	ItemCount  int     `json:"item_count"`
	TotalStock int     `json:"total_stock"`
	TotalIssue int     `json:"total_issued"`
	Value      float64 `json:"value"`
}

// AvailableStock returns stockQty minus issuedQty for an item, 0 when
// the item does not exist
func (s *Store) AvailableStock(itemID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availableStockLocked(itemID)
}

func (s *Store) availableStockLocked(itemID int) int {
	item := s.findItem(itemID)
	if item == nil {
		return 0
	}
	return item.AvailableStock()
}

// IssueStock validates the item, user and available quantity, prepends
// an issue transaction to the ledger and bumps the item's issued count
func (s *Store) IssueStock(input IssueStockInput) (entity.StockTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(input.ItemID)
	if item == nil {
		return entity.StockTransaction{}, apperror.NewNotFoundError("Item")
	}
	if s.findUser(input.UserID) == nil {
		return entity.StockTransaction{}, apperror.NewNotFoundError("User")
	}
	if input.Quantity <= 0 {
		return entity.StockTransaction{}, apperror.NewBadRequestError("Quantity must be positive")
	}

	available := item.AvailableStock()
	if input.Quantity > available {
		return entity.StockTransaction{}, apperror.NewUnprocessableError(
			fmt.Sprintf("Only %d units available", available))
	}

	txn := entity.StockTransaction{
		ID:            s.nextSequenceID(PrefixTransaction),
		Type:          enum.TransactionTypeIssue,
		Status:        enum.TransactionStatusIssued,
		ItemID:        input.ItemID,
		UserID:        input.UserID,
		Quantity:      input.Quantity,
		SerialNumbers: input.SerialNumbers,
		BatchNumber:   input.BatchNumber,
		JobID:         input.JobID,
		Notes:         input.Notes,
		CreatedAt:     s.now(),
	}

	// ledger is newest-first
	s.transactions = append([]entity.StockTransaction{txn}, s.transactions...)
	item.IssuedQty += input.Quantity

	return txn, nil
}

// ReturnStock validates the user's current holding, prepends a return
// transaction and decrements the item's issued count, floored at 0
func (s *Store) ReturnStock(input ReturnStockInput) (entity.StockTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(input.ItemID)
	if item == nil {
		return entity.StockTransaction{}, apperror.NewNotFoundError("Item")
	}
	if s.findUser(input.UserID) == nil {
		return entity.StockTransaction{}, apperror.NewNotFoundError("User")
	}
	if input.Quantity <= 0 {
		return entity.StockTransaction{}, apperror.NewBadRequestError("Quantity must be positive")
	}

	held := s.userStockForItemLocked(input.UserID, input.ItemID)
	if input.Quantity > held {
		return entity.StockTransaction{}, apperror.NewUnprocessableError(
			fmt.Sprintf("Cannot return %d units, only %d held", input.Quantity, held))
	}

	txn := entity.StockTransaction{
		ID:            s.nextSequenceID(PrefixTransaction),
		Type:          enum.TransactionTypeReturn,
		Status:        enum.TransactionStatusReturned,
		ItemID:        input.ItemID,
		UserID:        input.UserID,
		Quantity:      input.Quantity,
		SerialNumbers: input.SerialNumbers,
		Condition:     input.Condition,
		Notes:         input.Notes,
		CreatedAt:     s.now(),
	}

	s.transactions = append([]entity.StockTransaction{txn}, s.transactions...)
	item.IssuedQty -= input.Quantity
	if item.IssuedQty < 0 {
		item.IssuedQty = 0
	}

	return txn, nil
}

// UserStockForItem returns the user's net holding of one item: issued
// minus returned minus used, scanning the full ledger
func (s *Store) UserStockForItem(userID, itemID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userStockForItemLocked(userID, itemID)
}

func (s *Store) userStockForItemLocked(userID, itemID int) int {
	net := 0
	for _, t := range s.transactions {
		if t.UserID != userID || t.ItemID != itemID {
			continue
		}
		switch {
		case t.Type == enum.TransactionTypeIssue && t.Status == enum.TransactionStatusIssued:
			net += t.Quantity
		case t.Type == enum.TransactionTypeReturn:
			net -= t.Quantity
		case t.Status == enum.TransactionStatusUsed:
			net -= t.Quantity
		}
	}
	if net < 0 {
		return 0
	}
	return net
}

// UserStock rebuilds a user's per-item holdings by folding the ledger
// oldest-first: issues add serial numbers, returns and used stock remove
// them again. Items with nothing left are dropped from the result.
func (s *Store) UserStock(userID int) []UserHolding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type agg struct {
		quantity int
		serials  []string
	}
	holdings := make(map[int]*agg)

	// the ledger is stored newest-first; fold in chronological order
	for i := len(s.transactions) - 1; i >= 0; i-- {
		t := s.transactions[i]
		if t.UserID != userID {
			continue
		}
		h := holdings[t.ItemID]
		if h == nil {
			h = &agg{}
			holdings[t.ItemID] = h
		}
		switch {
		case t.Type == enum.TransactionTypeIssue && t.Status == enum.TransactionStatusIssued:
			h.quantity += t.Quantity
			h.serials = append(h.serials, t.SerialNumbers...)
		case t.Type == enum.TransactionTypeReturn, t.Status == enum.TransactionStatusUsed:
			h.quantity -= t.Quantity
			h.serials = removeSerials(h.serials, t.SerialNumbers)
		}
	}

	out := make([]UserHolding, 0, len(holdings))
	for itemID, h := range holdings {
		if h.quantity <= 0 {
			continue
		}
		holding := UserHolding{ItemID: itemID, Quantity: h.quantity, SerialNumbers: h.serials}
		if item := s.findItem(itemID); item != nil {
			holding.ItemName = item.Name
		}
		out = append(out, holding)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func removeSerials(held, gone []string) []string {
	for _, g := range gone {
		for i, h := range held {
			if h == g {
				held = append(held[:i], held[i+1:]...)
				break
			}
		}
	}
	return held
}

// LowStockItems returns active items whose available stock has fallen to
// the reorder level (default 5) or below
func (s *Store) LowStockItems() []entity.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Item
	for _, it := range s.items {
		if !it.IsActive {
			continue
		}
		if it.AvailableStock() <= it.EffectiveReorderLevel() {
			out = append(out, it)
		}
	}
	return out
}

// StockValuation values every item with available stock at its purchase
// price. FIFO and LIFO are labels only: no purchase-batch history is
// tracked, so both compute the same blended figure.
func (s *Store) StockValuation(method enum.ValuationMethod) (ValuationReport, error) {
	if !method.Valid() {
		return ValuationReport{}, apperror.NewBadRequestError("Unknown valuation method")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	report := ValuationReport{Method: method}
	for _, it := range s.items {
		available := it.AvailableStock()
		if available <= 0 {
			continue
		}
		value := float64(available) * it.PurchasePrice
		report.Lines = append(report.Lines, ValuationLine{
			ItemID:    it.ID,
			ItemName:  it.Name,
			Available: available,
			UnitCost:  it.PurchasePrice,
			Value:     value,
		})
		report.TotalValue += value
	}
	return report, nil
}

// StockSummaryByCategory groups items by category, summing counts,
// stock, issued quantities and value
func (s *Store) StockSummaryByCategory() []CategorySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCategory := make(map[string]*CategorySummary)
	var order []string
	for _, it := range s.items {
		sum := byCategory[it.Category]
		if sum == nil {
			sum = &CategorySummary{Category: it.Category}
			byCategory[it.Category] = sum
			order = append(order, it.Category)
		}
		sum.ItemCount++
		sum.TotalStock += it.StockQty
		sum.TotalIssue += it.IssuedQty
		sum.Value += float64(it.AvailableStock()) * it.PurchasePrice
	}

	out := make([]CategorySummary, 0, len(order))
	for _, cat := range order {
		out = append(out, *byCategory[cat])
	}
	return out
}

// ListTransactions returns the ledger newest-first
func (s *Store) ListTransactions() []entity.StockTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.StockTransaction(nil), s.transactions...)
}
