package entity

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

// Estimate represents a price estimate that may later convert to an order.
// Ids follow EST-{year}-{seq}; Version increments on every update.
type Estimate struct {
	ID         string              `json:"id"`
	Customer   CustomerInfo        `json:"customer"`
	Items      []LineItem          `json:"items"`
	Subtotal   float64             `json:"subtotal"`
	TaxAmount  float64             `json:"tax_amount"`
	Total      float64             `json:"total"`
	Status     enum.EstimateStatus `json:"status"`
	Version    int                 `json:"version"`
	Notes      string              `json:"notes,omitempty"`
	Date       time.Time           `json:"date"`
	IsActive   bool                `json:"is_active"`
	AuditTrail []AuditEntry        `json:"audit_trail,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// Order represents a confirmed sale. Ids follow ORD-{year}-{seq}. Orders
// may originate from an estimate and may later convert to an AMC contract.
type Order struct {
	ID            string             `json:"id"`
	EstimateID    string             `json:"estimate_id,omitempty"`
	AMCID         string             `json:"amc_id,omitempty"`
	Customer      CustomerInfo       `json:"customer"`
	Items         []LineItem         `json:"items"`
	Total         float64            `json:"total"`
	Status        enum.OrderStatus   `json:"status"`
	PaymentStatus enum.PaymentStatus `json:"payment_status"`
	Date          time.Time          `json:"date"`
	IsActive      bool               `json:"is_active"`
	AuditTrail    []AuditEntry       `json:"audit_trail,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Addon is a priced extra usable inside estimates
type Addon struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	GST      float64 `json:"gst"`
	IsActive bool    `json:"is_active"`
}

// Combination groups item ids that belong together; it filters item
// selection while an estimate is being built
type Combination struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Parts    []int  `json:"parts"`
	IsActive bool   `json:"is_active"`
}
