package model

import "time"

// Comment belongs to a post. The comments table is the single authoritative
// representation; there is no embedded copy on the post document.
type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	PostID    string    `gorm:"type:varchar(36);index:idx_comment_post;not null" json:"postId"`
	AuthorID  string    `gorm:"type:varchar(36);not null" json:"authorId"`
	Author    string    `gorm:"type:varchar(64);not null" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Comment) TableName() string { return "comments" }

// CommentView adds the derived like state.
type CommentView struct {
	Comment
	LikeCount int64    `json:"likes"`
	LikedBy   []string `json:"likedUsers"`
}
