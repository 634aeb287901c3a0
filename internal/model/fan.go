package model

import "time"

// Fan is the reverse edge (the followers of UserID), redundant with Follow.
// Written in the same transaction as the Follow row; the graph reconciler
// repairs any divergence between the two tables.
type Fan struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	UserID    string `gorm:"type:varchar(36);index:idx_fan_user;index:idx_fan_pair,unique;not null"`
	FanID     string `gorm:"type:varchar(36);not null;index:idx_fan_pair,unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Fan) TableName() string { return "fans" }
