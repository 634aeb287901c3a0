package model

import "time"

// NotificationKind enumerates what triggered a notification.
type NotificationKind string

const (
	NotificationLike        NotificationKind = "LIKE"
	NotificationComment     NotificationKind = "COMMENT"
	NotificationCommentLike NotificationKind = "COMMENT_LIKE"
	NotificationFollow      NotificationKind = "FOLLOW"
)

// Notification is one entry in a user's notification feed. RecipientID is
// never equal to ActorID; self-engagement produces no row.
type Notification struct {
	ID          string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RecipientID string           `gorm:"type:varchar(36);index:idx_notif_recipient" json:"userId"`
	Kind        NotificationKind `gorm:"type:varchar(16)" json:"type"`
	Message     string           `gorm:"type:varchar(512)" json:"message"`
	PostID      string           `gorm:"type:varchar(36)" json:"blogId,omitempty"`
	ActorID     string           `gorm:"type:varchar(36)" json:"fromUserId"`
	Read        bool             `gorm:"column:is_read;default:false" json:"isRead"`
	CreatedAt   time.Time        `gorm:"index" json:"createdAt"`
}

func (Notification) TableName() string { return "notifications" }
