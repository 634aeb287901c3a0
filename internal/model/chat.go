package model

import "time"

// ChatMessage is an append-only 1:1 message. Timestamp is always assigned by
// the server; identity is (from, to, timestamp) and there is no edit/delete.
type ChatMessage struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FromID    string    `gorm:"type:varchar(36);index:idx_chat_from_to;not null" json:"from"`
	ToID      string    `gorm:"type:varchar(36);index:idx_chat_from_to;not null" json:"to"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
