package model

import "time"

// ActivityType is the closed set of auditable account and resource events.
type ActivityType string

const (
	ActionSignUp         ActivityType = "SIGN_UP"
	ActionSignIn         ActivityType = "SIGN_IN"
	ActionSignOut        ActivityType = "SIGN_OUT"
	ActionUpdatePassword ActivityType = "UPDATE_PASSWORD"
	ActionDeleteAccount  ActivityType = "DELETE_ACCOUNT"
	ActionUpdateAccount  ActivityType = "UPDATE_ACCOUNT"
	ActionShareCreated   ActivityType = "SHARE_CREATED"
	ActionShareAccessed  ActivityType = "SHARE_ACCESSED"
	ActionShareUpdated   ActivityType = "SHARE_UPDATED"
	ActionShareDeleted   ActivityType = "SHARE_DELETED"
)

// ActivityLog is an append-only audit entry for a notable account event.
// Entries are created on the event and never updated or deleted.
type ActivityLog struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	UserID    uint         `json:"user_id" gorm:"not null;index"`
	Action    ActivityType `json:"action" gorm:"size:32;not null"`
	Timestamp time.Time    `json:"timestamp" gorm:"autoCreateTime"`
	IPAddress string       `json:"ip_address,omitempty" gorm:"size:45"` // fits IPv6
	Metadata  string       `json:"metadata,omitempty" gorm:"type:text"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName keeps the table name aligned with the persisted layout.
func (ActivityLog) TableName() string {
	return "activity_logs"
}
