package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
)

// LikeRepository manages the like sets for posts and comments. Each Add and
// Remove is a single atomic statement, so concurrent toggles on the same
// entity serialize at the store without a read-modify-write of the whole row.
type LikeRepository interface {
	AddPostLike(ctx context.Context, postID, userID string) (bool, error)
	RemovePostLike(ctx context.Context, postID, userID string) (bool, error)
	CountPostLikes(ctx context.Context, postID string) (int64, error)
	PostLikerIDs(ctx context.Context, postID string) ([]string, error)

	AddCommentLike(ctx context.Context, commentID, userID string) (bool, error)
	RemoveCommentLike(ctx context.Context, commentID, userID string) (bool, error)
	CountCommentLikes(ctx context.Context, commentID string) (int64, error)
	CommentLikerIDs(ctx context.Context, commentID string) ([]string, error)
}

type likeRepository struct{ db *gorm.DB }

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) AddPostLike(ctx context.Context, postID, userID string) (bool, error) {
	l := &model.PostLike{ID: uuid.New().String(), PostID: postID, UserID: userID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(l)
	return res.RowsAffected > 0, res.Error
}

func (r *likeRepository) RemovePostLike(ctx context.Context, postID, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostLike{})
	return res.RowsAffected > 0, res.Error
}

func (r *likeRepository) CountPostLikes(ctx context.Context, postID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Count(&cnt).Error
	return cnt, err
}

func (r *likeRepository) PostLikerIDs(ctx context.Context, postID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *likeRepository) AddCommentLike(ctx context.Context, commentID, userID string) (bool, error) {
	l := &model.CommentLike{ID: uuid.New().String(), CommentID: commentID, UserID: userID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(l)
	return res.RowsAffected > 0, res.Error
}

func (r *likeRepository) RemoveCommentLike(ctx context.Context, commentID, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{})
	return res.RowsAffected > 0, res.Error
}

func (r *likeRepository) CountCommentLikes(ctx context.Context, commentID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&cnt).Error
	return cnt, err
}

func (r *likeRepository) CommentLikerIDs(ctx context.Context, commentID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}
