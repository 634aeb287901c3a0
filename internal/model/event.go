package model

import "time"

// EngagementEvent is the fan-out outbox. A row is written in the same
// transaction as the state change that produced it; the notification worker
// claims pending rows and materialises Notification entries.
type EngagementEvent struct {
	ID          string           `gorm:"primaryKey;type:varchar(36)"`
	Kind        NotificationKind `gorm:"type:varchar(16)"`
	RecipientID string           `gorm:"type:varchar(36);index:idx_event_recipient"`
	ActorID     string           `gorm:"type:varchar(36)"`
	PostID      string           `gorm:"type:varchar(36)"`
	Message     string           `gorm:"type:varchar(512)"`
	CreatedAt   time.Time        `gorm:"index"`
	Status      string           `gorm:"type:varchar(16);index"` // pending, processing, done
	ClaimedAt   *time.Time
	ProcessedAt *time.Time
}

func (EngagementEvent) TableName() string { return "engagement_events" }

const (
	EventPending    = "pending"
	EventProcessing = "processing"
	EventDone       = "done"
)
