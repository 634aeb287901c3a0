package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
)

// NotificationService is the single entry point for producing notifications
// and the query surface for a user's feed.
type NotificationService interface {
	// Notify persists an unread notification. Self-notification
	// (recipient == actor) is silently dropped.
	Notify(ctx context.Context, recipientID, actorID string, kind model.NotificationKind, message, postID string) error
	List(ctx context.Context, recipientID string) ([]*model.Notification, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	ClearAll(ctx context.Context, recipientID string) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Notify(ctx context.Context, recipientID, actorID string, kind model.NotificationKind, message, postID string) error {
	if recipientID == actorID {
		return nil
	}
	return s.repo.Create(ctx, &model.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		ActorID:     actorID,
		Kind:        kind,
		Message:     message,
		PostID:      postID,
		Read:        false,
	})
}

func (s *notificationService) List(ctx context.Context, recipientID string) ([]*model.Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID)
}

func (s *notificationService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	return s.repo.CountUnread(ctx, recipientID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.repo.MarkAllRead(ctx, recipientID)
}

func (s *notificationService) ClearAll(ctx context.Context, recipientID string) error {
	return s.repo.DeleteByRecipient(ctx, recipientID)
}
