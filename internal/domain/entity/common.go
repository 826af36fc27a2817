package entity

import "time"

// AuditEntry is one line of an entity's audit trail
type AuditEntry struct {
	Action   string    `json:"action"`
	Field    string    `json:"field,omitempty"`
	OldValue string    `json:"old_value,omitempty"`
	NewValue string    `json:"new_value,omitempty"`
	By       string    `json:"by,omitempty"`
	At       time.Time `json:"at"`
}

// CustomerInfo carries customer contact fields embedded in estimates,
// orders, AMC contracts, jobs and RMA records
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// LineItem is a priced line inside an estimate or order
type LineItem struct {
	ItemID      int     `json:"item_id,omitempty"`
	AddonID     int     `json:"addon_id,omitempty"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	GST         float64 `json:"gst"`
	Total       float64 `json:"total"`
}
