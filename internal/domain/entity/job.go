package entity

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

// Job represents a service complaint/job. Ids follow JOB-{year}-{seq}.
// CompletedDate and DeliveredDate are stamped once, on the first
// transition into that status, and never overwritten.
type Job struct {
	ID            string         `json:"id"`
	Customer      CustomerInfo   `json:"customer"`
	Device        string         `json:"device,omitempty"`
	SerialNumber  string         `json:"serial_number,omitempty"`
	Issue         string         `json:"issue"`
	Status        enum.JobStatus `json:"status"`
	AssignedTo    int            `json:"assigned_to,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	CreatedDate   time.Time      `json:"created_date"`
	CompletedDate *time.Time     `json:"completed_date,omitempty"`
	DeliveredDate *time.Time     `json:"delivered_date,omitempty"`
	IsActive      bool           `json:"is_active"`
}
