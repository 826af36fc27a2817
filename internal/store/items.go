package store

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// ItemPatch carries the updatable item fields; nil means unchanged
type ItemPatch struct {
	PartID        *string
	SKU           *string
	Name          *string
	Category      *string
	Brand         *string
	Unit          *string
	PurchasePrice *float64
	SellingPrice  *float64
	StockQty      *int
	ReorderLevel  *int
}

// AddItem creates an item with the next numeric id and a single
// "Created" audit entry. The selling price must not undercut the
// purchase price.
func (s *Store) AddItem(input entity.Item) (entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.SellingPrice < input.PurchasePrice {
		return entity.Item{}, apperror.NewUnprocessableError("Selling price cannot be below purchase price")
	}

	now := s.now()
	input.ID = s.nextNumericID(colItems)
	input.IsActive = true
	input.CreatedAt = now
	input.UpdatedAt = now
	input.AuditTrail = []entity.AuditEntry{{Action: "Created", At: now}}

	s.items = append(s.items, input)
	return input, nil
}

// UpdateItem merges the patch into the item and appends the supplied
// change entries to its audit trail
func (s *Store) UpdateItem(id int, patch ItemPatch, changes []entity.AuditEntry) (entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(id)
	if item == nil {
		return entity.Item{}, apperror.NewNotFoundError("Item")
	}

	purchase := item.PurchasePrice
	if patch.PurchasePrice != nil {
		purchase = *patch.PurchasePrice
	}
	selling := item.SellingPrice
	if patch.SellingPrice != nil {
		selling = *patch.SellingPrice
	}
	if selling < purchase {
		return entity.Item{}, apperror.NewUnprocessableError("Selling price cannot be below purchase price")
	}

	if patch.PartID != nil {
		item.PartID = *patch.PartID
	}
	if patch.SKU != nil {
		item.SKU = *patch.SKU
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Brand != nil {
		item.Brand = *patch.Brand
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	item.PurchasePrice = purchase
	item.SellingPrice = selling
	if patch.StockQty != nil {
		item.StockQty = *patch.StockQty
	}
	if patch.ReorderLevel != nil {
		item.ReorderLevel = *patch.ReorderLevel
	}

	now := s.now()
	item.UpdatedAt = now
	for _, ch := range changes {
		if ch.At.IsZero() {
			ch.At = now
		}
		item.AuditTrail = append(item.AuditTrail, ch)
	}

	return *item, nil
}

// DeactivateItem soft-deletes an item. Physical removal would leave
// stock transactions and combinations pointing at a missing id, so
// items are only ever flagged inactive.
func (s *Store) DeactivateItem(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(id)
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}
	item.IsActive = false
	item.AuditTrail = append(item.AuditTrail, entity.AuditEntry{Action: "Deactivated", At: s.now()})
	return nil
}

// GetItem returns the item with the given id
func (s *Store) GetItem(id int) (entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item := s.findItem(id)
	if item == nil {
		return entity.Item{}, apperror.NewNotFoundError("Item")
	}
	return *item, nil
}

// ListItems returns all items, optionally including inactive ones
func (s *Store) ListItems(includeInactive bool) []entity.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Item, 0, len(s.items))
	for _, it := range s.items {
		if !includeInactive && !it.IsActive {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *Store) findItem(id int) *entity.Item {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}
