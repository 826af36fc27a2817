package entity

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

// RMARecord represents a return/replacement case. Ids follow
// RMA-{year}-{seq}. Status moves along the forward-only chain
// Inbox -> In-Company -> Outbox -> Delivered; the Delivered transition
// requires a valid OTP.
type RMARecord struct {
	ID             string            `json:"id"`
	Customer       CustomerInfo      `json:"customer"`
	Product        string            `json:"product"`
	SerialNumber   string            `json:"serial_number,omitempty"`
	Reason         string            `json:"reason,omitempty"`
	Status         enum.RMAStatus    `json:"status"`
	OTP            string            `json:"-"`
	OTPGeneratedAt *time.Time        `json:"otp_generated_at,omitempty"`
	InboxDate      *time.Time        `json:"inbox_date,omitempty"`
	InCompanyDate  *time.Time        `json:"in_company_date,omitempty"`
	OutboxDate     *time.Time        `json:"outbox_date,omitempty"`
	DeliveredDate  *time.Time        `json:"delivered_date,omitempty"`
	History        []RMAHistoryEntry `json:"history"`
	IsActive       bool              `json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
}

// RMAHistoryEntry is one line of an RMA record's transition history
type RMAHistoryEntry struct {
	Status enum.RMAStatus `json:"status,omitempty"`
	Note   string         `json:"note"`
	At     time.Time      `json:"at"`
}
