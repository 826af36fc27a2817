package entity

import "time"

// User represents a staff member. Users are pre-created by an admin with
// Registered=false and complete registration themselves, except admins who
// register through the approval workflow.
type User struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Password     string             `json:"-"`
	Role         string             `json:"role"`
	Department   string             `json:"department,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	Permissions  []string           `json:"permissions,omitempty"`
	LeaveBalance map[string]float64 `json:"leave_balance,omitempty"`
	IsAdmin      bool               `json:"is_admin"`
	Registered   bool               `json:"registered"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    time.Time          `json:"created_at"`
}

// HasPermission checks if the user carries a specific permission
func (u *User) HasPermission(name string) bool {
	for _, p := range u.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// Role represents a role with its permission set. Built-ins are seeded;
// admins may add custom roles.
type Role struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	IsBuiltIn   bool     `json:"is_built_in"`
	IsActive    bool     `json:"is_active"`
}

// Department represents an organizational unit. Users reference it by
// name, not by id.
type Department struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
