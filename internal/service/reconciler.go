package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/logger"
)

// GraphReconciler repairs divergence between the follows table and its fans
// redundancy. Both sides are written in one transaction on the hot path, so
// under normal operation a pass finds nothing; the reconciler exists so that
// a half-applied edge is detectable and repairable rather than permanent.
type GraphReconciler struct {
	db       *gorm.DB
	fanRepo  repository.FanRepository
	interval time.Duration
	repaired chan int // repairs per pass, for observation in tests/benches
}

func NewGraphReconciler(db *gorm.DB, fanRepo repository.FanRepository, interval time.Duration) *GraphReconciler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &GraphReconciler{db: db, fanRepo: fanRepo, interval: interval, repaired: make(chan int, 1024)}
}

// Repaired reports how many edges each pass fixed.
func (r *GraphReconciler) Repaired() <-chan int { return r.repaired }

// Start runs periodic passes until the returned stop function is called.
func (r *GraphReconciler) Start() func(context.Context) error {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if _, err := r.ReconcileOnce(context.Background()); err != nil {
					logger.Warn("graph reconcile pass failed", zap.Error(err))
				}
			}
		}
	}()
	return func(ctx context.Context) error { close(stop); return nil }
}

// ReconcileOnce makes fans agree with follows in both directions and returns
// the number of repairs applied.
func (r *GraphReconciler) ReconcileOnce(ctx context.Context) (int, error) {
	repairs := 0

	// follows without a matching fan row: re-add the reverse edge
	var missing []model.Follow
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("NOT EXISTS (SELECT 1 FROM fans WHERE fans.user_id = follows.followee_id AND fans.fan_id = follows.follower_id)").
		Find(&missing).Error
	if err != nil {
		return repairs, err
	}
	for _, f := range missing {
		if err := r.fanRepo.Create(ctx, f.FolloweeID, f.FollowerID); err != nil {
			return repairs, err
		}
		logger.Warn("repaired missing fan edge",
			zap.String("user", f.FolloweeID), zap.String("fan", f.FollowerID))
		repairs++
	}

	// fans without a matching follow row: the edge was removed, drop it
	var stale []model.Fan
	err = r.db.WithContext(ctx).
		Model(&model.Fan{}).
		Where("NOT EXISTS (SELECT 1 FROM follows WHERE follows.follower_id = fans.fan_id AND follows.followee_id = fans.user_id)").
		Find(&stale).Error
	if err != nil {
		return repairs, err
	}
	for _, f := range stale {
		if err := r.fanRepo.Delete(ctx, f.UserID, f.FanID); err != nil {
			return repairs, err
		}
		logger.Warn("dropped stale fan edge",
			zap.String("user", f.UserID), zap.String("fan", f.FanID))
		repairs++
	}

	if repairs > 0 {
		select {
		case r.repaired <- repairs:
		default:
		}
	}
	return repairs, nil
}
