package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gaurav-Shaw09/PenFolio/internal/cache"
	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
)

// RelationshipService owns the follow graph.
type RelationshipService interface {
	Follow(ctx context.Context, followerID, targetID string) error
	Unfollow(ctx context.Context, followerID, targetID string) error
	ListFollowers(ctx context.Context, userID string) ([]model.UserSummary, error)
	ListFollowing(ctx context.Context, userID string) ([]model.UserSummary, error)
}

type relationshipService struct {
	db         *gorm.DB
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	fanRepo    repository.FanRepository
	snapshots  *cache.FollowerCache
}

func NewRelationshipService(db *gorm.DB, userRepo repository.UserRepository, followRepo repository.FollowRepository, fanRepo repository.FanRepository, snapshots *cache.FollowerCache) RelationshipService {
	return &relationshipService{db: db, userRepo: userRepo, followRepo: followRepo, fanRepo: fanRepo, snapshots: snapshots}
}

// Follow writes the forward edge, the reverse edge and the FOLLOW fan-out
// event in one transaction, so a partial two-sided update cannot be observed.
func (s *relationshipService) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return ErrSelfFollow
	}
	follower, err := s.userRepo.GetByID(ctx, followerID)
	if err != nil {
		return err
	}
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if follower == nil || target == nil {
		return ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		edge := &model.Follow{ID: uuid.New().String(), FollowerID: followerID, FolloweeID: targetID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(edge)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyFollowing
		}
		fan := &model.Fan{ID: uuid.New().String(), UserID: targetID, FanID: followerID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(fan).Error; err != nil {
			return err
		}
		event := &model.EngagementEvent{
			ID:          uuid.New().String(),
			Kind:        model.NotificationFollow,
			RecipientID: targetID,
			ActorID:     followerID,
			Message:     fmt.Sprintf("%s followed you", follower.Username),
			Status:      model.EventPending,
		}
		return tx.Create(event).Error
	})
	if err != nil {
		return err
	}

	if s.snapshots != nil {
		s.snapshots.Invalidate(ctx, followerID, targetID)
	}
	return nil
}

// Unfollow removes both sides of the edge; a missing edge is a no-op.
func (s *relationshipService) Unfollow(ctx context.Context, followerID, targetID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("follower_id = ? AND followee_id = ?", followerID, targetID).
			Delete(&model.Follow{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND fan_id = ?", targetID, followerID).
			Delete(&model.Fan{}).Error
	})
	if err != nil {
		return err
	}

	if s.snapshots != nil {
		s.snapshots.Invalidate(ctx, followerID, targetID)
	}
	return nil
}

func (s *relationshipService) ListFollowers(ctx context.Context, userID string) ([]model.UserSummary, error) {
	load := func(ctx context.Context) ([]string, error) {
		return s.fanRepo.FanIDs(ctx, userID)
	}
	if s.snapshots != nil {
		return s.snapshots.Get(ctx, cache.KindFollowers, userID, load)
	}
	ids, err := load(ctx)
	if err != nil {
		return nil, err
	}
	return s.summaries(ctx, ids)
}

func (s *relationshipService) ListFollowing(ctx context.Context, userID string) ([]model.UserSummary, error) {
	load := func(ctx context.Context) ([]string, error) {
		return s.followRepo.FolloweeIDs(ctx, userID)
	}
	if s.snapshots != nil {
		return s.snapshots.Get(ctx, cache.KindFollowing, userID, load)
	}
	ids, err := load(ctx)
	if err != nil {
		return nil, err
	}
	return s.summaries(ctx, ids)
}

// summaries resolves ids to user summaries preserving the input order.
func (s *relationshipService) summaries(ctx context.Context, ids []string) ([]model.UserSummary, error) {
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	out := make([]model.UserSummary, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, model.UserSummary{ID: u.ID, Username: u.Username, Description: u.Description})
		}
	}
	return out, nil
}
