package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Gaurav-Shaw09/PenFolio/config"
	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
	"github.com/Gaurav-Shaw09/PenFolio/internal/service"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/database"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/logger"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
}

// notifybench measures the engagement pipeline end to end: N users like one
// author's post, each like is a short transaction that also enqueues an
// event, and the fanout workers turn events into notification rows. We
// report the like tx latency and the event-to-notification landing time.
func main() {
	cfg := must(config.Load())
	_ = logger.Init("release")
	db := must(database.InitDB(cfg))

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	engSvc := service.NewEngagementService(db, userRepo, postRepo, commentRepo, likeRepo, followRepo)
	notifSvc := service.NewNotificationService(notifRepo)

	n := envInt("N", 5000)
	workers := envInt("WORKERS", cfg.Fanout.Workers)
	claim := envInt("CLAIM", cfg.Fanout.ClaimLimit)

	ctx := context.Background()

	author := &model.User{ID: uuid.New().String(), Username: "author", Email: "author@example.com", Password: "p", Role: "USER"}
	must(0, userRepo.Create(ctx, author))

	likers := make([]*model.User, n)
	for i := range likers {
		id := uuid.New().String()
		likers[i] = &model.User{ID: id, Username: "u" + id[:8], Email: id[:8] + "@example.com", Password: "p", Role: "USER"}
		must(0, userRepo.Create(ctx, likers[i]))
	}

	post := must(engSvc.CreatePost(ctx, author.ID, "bench post", "hello", ""))

	worker := service.NewNotificationWorker(eventRepo, notifSvc, workers, claim, cfg.Fanout.PollInterval)
	stop := worker.Start()
	defer stop(context.Background())

	likeDurations := make([]time.Duration, 0, n)
	for _, u := range likers {
		st := time.Now()
		must(engSvc.ToggleLike(ctx, post.ID, u.ID))
		likeDurations = append(likeDurations, time.Since(st))
	}

	land := make([]time.Duration, 0, n)
	timeout := time.After(2 * time.Minute)
	for len(land) < n {
		select {
		case d := <-worker.Metrics():
			land = append(land, d)
		case <-timeout:
			fmt.Printf("timeout waiting for fanout: got=%d want=%d\n", len(land), n)
			goto PRINT
		}
	}

PRINT:
	var likeSum, landSum time.Duration
	for _, d := range likeDurations {
		likeSum += d
	}
	for _, d := range land {
		landSum += d
	}
	fmt.Printf("N=%d WORKERS=%d CLAIM=%d\n", n, workers, claim)
	fmt.Printf("Like tx latency: avg=%v p95=%v p99=%v\n",
		likeSum/time.Duration(len(likeDurations)), pct(likeDurations, 0.95), pct(likeDurations, 0.99))
	if len(land) > 0 {
		fmt.Printf("Fanout landing (event->notification): samples=%d avg=%v p95=%v p99=%v\n",
			len(land), landSum/time.Duration(len(land)), pct(land, 0.95), pct(land, 0.99))
	}

	st := time.Now()
	rows := must(notifSvc.List(ctx, author.ID))
	fmt.Printf("Notification list read (author): %v, rows=%d\n", time.Since(st), len(rows))

	pending := must(eventRepo.CountPending(ctx))
	fmt.Printf("Events still pending: %d\n", pending)
}
