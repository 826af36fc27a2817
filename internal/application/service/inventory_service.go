package service

import (
	"fmt"
	"strconv"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
	"github.com/nivaranatech/opsdesk-api/pkg/utils"
)

// InventoryService handles items, addons and combinations
type InventoryService struct {
	store *store.Store
}

// NewInventoryService creates a new inventory service
func NewInventoryService(st *store.Store) *InventoryService {
	return &InventoryService{store: st}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	PartID        string
	SKU           string
	Name          string
	Category      string
	Brand         string
	Unit          string
	PurchasePrice float64
	SellingPrice  float64
	StockQty      int
	ReorderLevel  int
}

// CreateItem creates an inventory item, generating an SKU when none is
// supplied
func (s *InventoryService) CreateItem(input *CreateItemInput) (entity.Item, error) {
	if input.Name == "" {
		return entity.Item{}, apperror.NewBadRequestError("Item name is required")
	}
	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU()
	}
	return s.store.AddItem(entity.Item{
		PartID:        input.PartID,
		SKU:           sku,
		Name:          input.Name,
		Category:      input.Category,
		Brand:         input.Brand,
		Unit:          input.Unit,
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
		StockQty:      input.StockQty,
		ReorderLevel:  input.ReorderLevel,
	})
}

// UpdateItem applies a patch and records a per-field audit entry for
// every changed value, attributed to the acting user
func (s *InventoryService) UpdateItem(id int, patch store.ItemPatch, actor string) (entity.Item, error) {
	current, err := s.store.GetItem(id)
	if err != nil {
		return entity.Item{}, err
	}

	var changes []entity.AuditEntry
	note := func(field, oldValue, newValue string) {
		if oldValue != newValue {
			changes = append(changes, entity.AuditEntry{
				Action: "Updated", Field: field,
				OldValue: oldValue, NewValue: newValue, By: actor,
			})
		}
	}

	if patch.Name != nil {
		note("name", current.Name, *patch.Name)
	}
	if patch.Category != nil {
		note("category", current.Category, *patch.Category)
	}
	if patch.Brand != nil {
		note("brand", current.Brand, *patch.Brand)
	}
	if patch.PurchasePrice != nil {
		note("purchase_price", formatPrice(current.PurchasePrice), formatPrice(*patch.PurchasePrice))
	}
	if patch.SellingPrice != nil {
		note("selling_price", formatPrice(current.SellingPrice), formatPrice(*patch.SellingPrice))
	}
	if patch.StockQty != nil {
		note("stock_qty", strconv.Itoa(current.StockQty), strconv.Itoa(*patch.StockQty))
	}
	if patch.ReorderLevel != nil {
		note("reorder_level", strconv.Itoa(current.ReorderLevel), strconv.Itoa(*patch.ReorderLevel))
	}

	return s.store.UpdateItem(id, patch, changes)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// DeleteItem soft-deletes an item
func (s *InventoryService) DeleteItem(id int) error {
	return s.store.DeactivateItem(id)
}

// GetItem retrieves an item by id
func (s *InventoryService) GetItem(id int) (entity.Item, error) {
	return s.store.GetItem(id)
}

// ListItems lists items
func (s *InventoryService) ListItems(includeInactive bool) []entity.Item {
	return s.store.ListItems(includeInactive)
}

// CreateAddon creates a billable addon
func (s *InventoryService) CreateAddon(name, unit string, price, gst float64) (entity.Addon, error) {
	if name == "" {
		return entity.Addon{}, apperror.NewBadRequestError("Addon name is required")
	}
	return s.store.AddAddon(entity.Addon{Name: name, Unit: unit, Price: price, GST: gst})
}

// UpdateAddon updates an addon
func (s *InventoryService) UpdateAddon(id int, name, unit string, price, gst float64) (entity.Addon, error) {
	return s.store.UpdateAddon(id, name, unit, price, gst)
}

// DeleteAddon soft-deletes an addon
func (s *InventoryService) DeleteAddon(id int) error {
	return s.store.DeactivateAddon(id)
}

// ListAddons lists addons
func (s *InventoryService) ListAddons(includeInactive bool) []entity.Addon {
	return s.store.ListAddons(includeInactive)
}

// CreateCombination groups items that sell together. A combination
// needs at least two parts to mean anything.
func (s *InventoryService) CreateCombination(name string, parts []int) (entity.Combination, error) {
	if name == "" {
		return entity.Combination{}, apperror.NewBadRequestError("Combination name is required")
	}
	if len(parts) < 2 {
		return entity.Combination{}, apperror.NewBadRequestError(
			fmt.Sprintf("A combination needs at least 2 parts, got %d", len(parts)))
	}
	return s.store.AddCombination(entity.Combination{Name: name, Parts: parts})
}

// DeleteCombination soft-deletes a combination
func (s *InventoryService) DeleteCombination(id int) error {
	return s.store.DeactivateCombination(id)
}

// ListCombinations lists combinations
func (s *InventoryService) ListCombinations(includeInactive bool) []entity.Combination {
	return s.store.ListCombinations(includeInactive)
}
