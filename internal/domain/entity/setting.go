package entity

import "time"

// Setting is one durable configuration key. Value holds a JSON-encoded
// payload so callers can persist structured values without schema churn.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
