package model

import "time"

// Post is a blog entry. Author is a display-name snapshot taken when the
// post is created; it does not track later profile edits.
type Post struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AuthorID  string    `gorm:"type:varchar(36);index:idx_post_author;not null" json:"authorId"`
	Author    string    `gorm:"type:varchar(64);not null" json:"author"`
	Title     string    `gorm:"type:varchar(256);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	ImagePath string    `gorm:"type:varchar(256)" json:"imagePath"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Post) TableName() string { return "posts" }

// PostView is a Post together with engagement state derived at read time.
// LikeCount is always the cardinality of the like set, never stored.
type PostView struct {
	Post
	LikeCount int64         `json:"likes"`
	LikedBy   []string      `json:"likedUsers"`
	Comments  []CommentView `json:"comments"`
}
