package entity

import "time"

// Item represents a part or product in the inventory
type Item struct {
	ID            int          `json:"id"`
	PartID        string       `json:"part_id,omitempty"`
	SKU           string       `json:"sku"`
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	Brand         string       `json:"brand,omitempty"`
	Unit          string       `json:"unit,omitempty"`
	PurchasePrice float64      `json:"purchase_price"`
	SellingPrice  float64      `json:"selling_price"`
	StockQty      int          `json:"stock_qty"`
	IssuedQty     int          `json:"issued_qty"`
	ReorderLevel  int          `json:"reorder_level"`
	IsActive      bool         `json:"is_active"`
	AuditTrail    []AuditEntry `json:"audit_trail,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// AvailableStock returns the stock on hand minus what is issued out,
// never negative
func (i *Item) AvailableStock() int {
	available := i.StockQty - i.IssuedQty
	if available < 0 {
		return 0
	}
	return available
}

// EffectiveReorderLevel falls back to 5 when no reorder level is configured
func (i *Item) EffectiveReorderLevel() int {
	if i.ReorderLevel > 0 {
		return i.ReorderLevel
	}
	return 5
}
