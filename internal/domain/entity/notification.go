package entity

import (
	"time"
)

// NotificationType names the activity that produced a notification.
type NotificationType string

const (
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
	NotificationLike    NotificationType = "like"
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationComment, NotificationFollow, NotificationLike:
		return true
	default:
		return false
	}
}

// Notification tells To that From did something involving them.
type Notification struct {
	ID        ID               `json:"_id"`
	From      UserSummary      `json:"from"`
	To        UserSummary      `json:"to"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
