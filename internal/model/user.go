package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents an admin-panel user account.
//
// Email carries a plain index rather than a unique one: uniqueness only holds
// among live rows (a soft-deleted user's email may be reused), which a global
// unique constraint cannot express. The service layer enforces it against
// live rows before writes.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name,omitempty" gorm:"size:100"`
	Email        string         `json:"email" gorm:"size:255;not null;index"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	ActivityLogs []ActivityLog `json:"-" gorm:"foreignKey:UserID"`
}
