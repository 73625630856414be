package models

import "time"

// Record carries the surrogate key and timestamps shared by every entity
// that is not keyed by its URL.
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Defaulter is implemented by entities with declared field defaults. The
// catalog applies them before validating a create or update.
type Defaulter interface {
	ApplyDefaults()
}
