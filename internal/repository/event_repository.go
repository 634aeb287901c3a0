package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
)

// EventRepository is the fan-out outbox. Enqueue is called inside the
// transaction that applies the state change the event describes.
type EventRepository interface {
	Enqueue(ctx context.Context, e *model.EngagementEvent) error
	// ClaimPending marks up to limit pending events as processing and
	// returns them, oldest first.
	ClaimPending(ctx context.Context, limit int) ([]*model.EngagementEvent, error)
	MarkDone(ctx context.Context, id string) error
	// MarkPending returns a claimed event to the queue so a later pass
	// retries it.
	MarkPending(ctx context.Context, id string) error
	// ReclaimStale requeues processing events claimed before the cutoff.
	// They belong to workers that died mid-batch; delivery becomes
	// at-least-once rather than lost.
	ReclaimStale(ctx context.Context, olderThan time.Duration) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

type eventRepository struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) EventRepository { return &eventRepository{db: db} }

func (r *eventRepository) Enqueue(ctx context.Context, e *model.EngagementEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = model.EventPending
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepository) ClaimPending(ctx context.Context, limit int) ([]*model.EngagementEvent, error) {
	var batch []*model.EngagementEvent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("status = ?", model.EventPending).
			Order("created_at ASC").
			Limit(limit)
		// postgres: row locks stop two workers claiming the same batch
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
		}
		if err := q.Find(&batch).Error; err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}
		ids := make([]string, len(batch))
		for i, e := range batch {
			ids[i] = e.ID
		}
		now := time.Now()
		return tx.Model(&model.EngagementEvent{}).
			Where("id IN ?", ids).
			Updates(map[string]any{"status": model.EventProcessing, "claimed_at": now}).Error
	})
	return batch, err
}

func (r *eventRepository) MarkDone(ctx context.Context, id string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.EngagementEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": model.EventDone, "processed_at": now}).Error
}

func (r *eventRepository) MarkPending(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.EngagementEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": model.EventPending, "claimed_at": nil}).Error
}

func (r *eventRepository) ReclaimStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res := r.db.WithContext(ctx).
		Model(&model.EngagementEvent{}).
		Where("status = ? AND claimed_at < ?", model.EventProcessing, cutoff).
		Updates(map[string]any{"status": model.EventPending, "claimed_at": nil})
	return res.RowsAffected, res.Error
}

func (r *eventRepository) CountPending(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.EngagementEvent{}).
		Where("status = ?", model.EventPending).
		Count(&cnt).Error
	return cnt, err
}
