package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/logger"
)

// NotificationWorker drains the engagement_events outbox and materialises
// notification rows through NotificationService.
type NotificationWorker struct {
	events       repository.EventRepository
	notifier     NotificationService
	workers      int
	claimLimit   int
	pollInterval time.Duration
	reclaimAfter time.Duration      // processing claims older than this are requeued
	metricsCh    chan time.Duration // event created -> processed latency
}

func NewNotificationWorker(events repository.EventRepository, notifier NotificationService, workers, claimLimit int, pollInterval time.Duration) *NotificationWorker {
	if workers <= 0 {
		workers = 4
	}
	if claimLimit <= 0 {
		claimLimit = 128
	}
	if pollInterval <= 0 {
		pollInterval = 50 * time.Millisecond
	}
	return &NotificationWorker{
		events:       events,
		notifier:     notifier,
		workers:      workers,
		claimLimit:   claimLimit,
		pollInterval: pollInterval,
		reclaimAfter: time.Minute,
		metricsCh:    make(chan time.Duration, 65536),
	}
}

func (w *NotificationWorker) Metrics() <-chan time.Duration { return w.metricsCh }

// Start launches the polling workers and returns a stop function.
func (w *NotificationWorker) Start() func(context.Context) error {
	stop := make(chan struct{})
	for i := 0; i < w.workers; i++ {
		go w.loop(stop)
	}
	return func(ctx context.Context) error { close(stop); return nil }
}

func (w *NotificationWorker) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := w.ProcessOnce(context.Background()); err != nil {
				logger.Warn("notification fanout pass failed", zap.Error(err))
			}
		}
	}
}

// ProcessOnce claims a batch of pending events and fans each one out.
// Failed deliveries go back to pending, and claims stranded by a dead
// worker are requeued once they age past the reclaim window. Delivery
// is at-least-once.
func (w *NotificationWorker) ProcessOnce(ctx context.Context) error {
	if n, err := w.events.ReclaimStale(ctx, w.reclaimAfter); err != nil {
		logger.Warn("reclaim stale events failed", zap.Error(err))
	} else if n > 0 {
		logger.Warn("requeued stale events", zap.Int64("count", n))
	}
	batch, err := w.events.ClaimPending(ctx, w.claimLimit)
	if err != nil {
		return err
	}
	for _, e := range batch {
		if err := w.notifier.Notify(ctx, e.RecipientID, e.ActorID, e.Kind, e.Message, e.PostID); err != nil {
			logger.Error("notify failed",
				zap.String("event", e.ID),
				zap.String("recipient", e.RecipientID),
				zap.Error(err))
			if err := w.events.MarkPending(ctx, e.ID); err != nil {
				logger.Error("requeue event failed", zap.String("event", e.ID), zap.Error(err))
			}
			continue
		}
		if err := w.events.MarkDone(ctx, e.ID); err != nil {
			logger.Error("mark event done failed", zap.String("event", e.ID), zap.Error(err))
			continue
		}
		if !e.CreatedAt.IsZero() {
			select {
			case w.metricsCh <- time.Since(e.CreatedAt):
			default:
			}
		}
	}
	return nil
}
