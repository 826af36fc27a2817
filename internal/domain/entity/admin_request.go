package entity

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

// AdminRequest gates admin self-registration. At most one pending
// request exists per email at a time.
type AdminRequest struct {
	ID        int                     `json:"id"`
	Email     string                  `json:"email"`
	Name      string                  `json:"name,omitempty"`
	Status    enum.AdminRequestStatus `json:"status"`
	Reason    string                  `json:"reason,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	DecidedAt *time.Time              `json:"decided_at,omitempty"`
}

// Notification is an in-app notification record
type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
