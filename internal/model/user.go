package model

import "time"

// User is an account. The username is immutable after registration; the
// password field holds a bcrypt hash and is opaque to the engine.
type User struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username    string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:varchar(128);not null" json:"-"`
	Role        string    `gorm:"type:varchar(16);default:USER" json:"role"`
	Description string    `gorm:"type:text" json:"description"`
	ImagePath   string    `gorm:"type:varchar(256)" json:"imagePath"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserSummary is the shape returned by follower/following listings.
type UserSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
}
