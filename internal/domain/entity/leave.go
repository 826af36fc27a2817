package entity

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

// LeaveRequest represents a leave application. Final approval deducts
// Days from the requester's leave balance exactly once.
type LeaveRequest struct {
	ID              int              `json:"id"`
	UserID          int              `json:"user_id"`
	LeaveType       string           `json:"leave_type"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	Days            float64          `json:"days"`
	HalfDay         bool             `json:"half_day,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	Status          enum.LeaveStatus `json:"status"`
	ApprovalHistory []ApprovalEntry  `json:"approval_history"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ApprovalEntry is one step in a leave request's approval chain
type ApprovalEntry struct {
	Action       string    `json:"action"`
	ApproverName string    `json:"approver_name"`
	ApproverRole string    `json:"approver_role"`
	Comments     string    `json:"comments,omitempty"`
	At           time.Time `json:"at"`
}

// Holiday is a non-working day consulted by the leave-day calculator.
// Date is an ISO yyyy-mm-dd string matched by equality.
type Holiday struct {
	ID   int    `json:"id"`
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}
