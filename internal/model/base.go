package model

import (
	"time"
)

// Base carries the identity and bookkeeping columns shared by every table.
// No gorm soft delete: users and enrollments are hard-deleted, and the
// course catalog has its own IsActive flag.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
