package models

import (
	"time"

	"github.com/ideavault/backend/internal/target"
)

// NotificationType says what happened; the item kind says what it happened
// to. The two are validated independently (a like on a comment is
// type=Like, item kind=Comment).
type NotificationType string

const (
	NotificationTypeLike     NotificationType = "Like"
	NotificationTypeComment  NotificationType = "Comment"
	NotificationTypeFollow   NotificationType = "Follow"
	NotificationTypeAnnounce NotificationType = "Announce"
)

// Valid reports whether t is a member of the closed type set.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeLike, NotificationTypeComment, NotificationTypeFollow, NotificationTypeAnnounce:
		return true
	}
	return false
}

// Notification records that the notificator triggered an event visible to
// the recipient, referencing an item by kind and decoded internal id only.
// There is no foreign key to the item: the item may be deleted later and
// the reference left dangling, which readers must tolerate.
type Notification struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	NotificatorID uint             `json:"notificator_id" gorm:"index;not null"`
	Notificator   *User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	RecipientID   uint             `json:"recipient_id" gorm:"index;not null"`
	Recipient     *User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Type          NotificationType `json:"notification_type" gorm:"size:20;not null"`
	ItemKind      target.Kind      `json:"notified_item_kind" gorm:"size:20;not null"`
	ItemID        string           `json:"notified_item_id" gorm:"size:64"` // decoded internal id, may dangle
	IsChecked     bool             `json:"is_checked" gorm:"default:false;index"`
	CreatedAt     time.Time        `json:"created_at" gorm:"index"`
}

// CreateNotificationRequest defines the request body for creating a
// notification. The recipient and item ids are opaque external identifiers
// decoded once at creation.
type CreateNotificationRequest struct {
	RecipientID      string `json:"notification_recipient_id" validate:"required"`
	NotificationType string `json:"notification_type" validate:"required"`
	NotifiedItemType string `json:"notified_item_type" validate:"required"`
	NotifiedItemID   string `json:"notified_item_id" validate:"required"`
}
