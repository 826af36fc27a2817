package entity

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

// StockTransaction is one entry in the append-only stock ledger. Ids
// follow STK-{year}-{seq}. The ledger is kept newest-first; net holding
// per (user, item) is derived by summing issue - return - used.
type StockTransaction struct {
	ID            string                 `json:"id"`
	Type          enum.TransactionType   `json:"type"`
	Status        enum.TransactionStatus `json:"status"`
	ItemID        int                    `json:"item_id"`
	UserID        int                    `json:"user_id"`
	Quantity      int                    `json:"quantity"`
	SerialNumbers []string               `json:"serial_numbers,omitempty"`
	BatchNumber   string                 `json:"batch_number,omitempty"`
	JobID         string                 `json:"job_id,omitempty"`
	Condition     string                 `json:"condition,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}
