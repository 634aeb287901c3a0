package model

import "time"

// PostLike is one element of a post's like set. The composite unique index
// makes set membership atomic at the store level; the like count is always
// COUNT(*) over this table.
type PostLike struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	PostID    string `gorm:"type:varchar(36);index:idx_post_like_post;index:idx_post_like_pair,unique;not null"`
	UserID    string `gorm:"type:varchar(36);not null;index:idx_post_like_pair,unique"`
	CreatedAt time.Time
}

func (PostLike) TableName() string { return "post_likes" }

// CommentLike mirrors PostLike for comments.
type CommentLike struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	CommentID string `gorm:"type:varchar(36);index:idx_comment_like_comment;index:idx_comment_like_pair,unique;not null"`
	UserID    string `gorm:"type:varchar(36);not null;index:idx_comment_like_pair,unique"`
	CreatedAt time.Time
}

func (CommentLike) TableName() string { return "comment_likes" }
