package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
)

type ChatRepository interface {
	Create(ctx context.Context, msg *model.ChatMessage) error
	// History returns every message between the two users, in either
	// direction, ascending by timestamp.
	History(ctx context.Context, userA, userB string) ([]*model.ChatMessage, error)
}

type chatRepository struct{ db *gorm.DB }

func NewChatRepository(db *gorm.DB) ChatRepository { return &chatRepository{db: db} }

func (r *chatRepository) Create(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatRepository) History(ctx context.Context, userA, userB string) ([]*model.ChatMessage, error) {
	var msgs []*model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", userA, userB, userB, userA).
		Order("timestamp ASC").
		Find(&msgs).Error
	return msgs, err
}
