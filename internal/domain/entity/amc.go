package entity

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

// AMCContract represents an annual maintenance contract. Ids follow
// AMC-{year}-{seq}; QRCodeID is "{id}-{deviceSerial}".
type AMCContract struct {
	ID               string            `json:"id"`
	QRCodeID         string            `json:"qr_code_id"`
	OrderID          string            `json:"order_id,omitempty"`
	Customer         CustomerInfo      `json:"customer"`
	DeviceSerial     string            `json:"device_serial"`
	DeviceModel      string            `json:"device_model,omitempty"`
	StartDate        time.Time         `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
	Amount           float64           `json:"amount"`
	Status           enum.AMCStatus    `json:"status"`
	RenewalReminders []RenewalReminder `json:"renewal_reminders"`
	ServiceHistory   []ServiceRecord   `json:"service_history"`
	IsActive         bool              `json:"is_active"`
	CreatedAt        time.Time         `json:"created_at"`
}

// RenewalReminder marks a days-before-expiry threshold and whether the
// reminder went out
type RenewalReminder struct {
	DaysBefore int  `json:"days_before"`
	Sent       bool `json:"sent"`
}

// ServiceRecord is one visit logged against an AMC contract
type ServiceRecord struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Technician  string    `json:"technician,omitempty"`
}
