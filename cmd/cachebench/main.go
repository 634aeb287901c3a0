package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Gaurav-Shaw09/PenFolio/config"
	"github.com/Gaurav-Shaw09/PenFolio/internal/cache"
	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
	"github.com/Gaurav-Shaw09/PenFolio/internal/service"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/database"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/logger"
)

const (
	hubCount      = 3
	followerCount = 10000
	requestCount  = 9000
)

// cachebench compares follower list reads straight from the database against
// the redis list-index + snapshot cache, over a few hub users with
// overlapping follower sets.
func main() {
	cfg := must(config.Load())
	_ = logger.Init("release")
	db := must(database.InitDB(cfg))

	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		panic(fmt.Sprintf("redis at %s: %v", cfg.Redis.Addr, err))
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	fanRepo := repository.NewFanRepository(db)

	fmt.Println("Seeding follower graph...")
	hubs := make([]*model.User, hubCount)
	for i := range hubs {
		hubs[i] = &model.User{
			ID:       fmt.Sprintf("hub%d", i),
			Username: fmt.Sprintf("hub%d", i),
			Email:    fmt.Sprintf("hub%d@example.com", i),
			Password: "p",
			Role:     "USER",
		}
		_ = userRepo.Create(ctx, hubs[i])
	}

	followers := make([]model.User, followerCount)
	for i := range followers {
		id := uuid.NewString()
		followers[i] = model.User{
			ID:       id,
			Username: fmt.Sprintf("user_%d", i),
			Email:    fmt.Sprintf("user_%d@example.com", i),
			Password: "p",
			Role:     "USER",
		}
	}
	must(0, db.CreateInBatches(&followers, 1000).Error)

	// Each hub gets half the pool, offset so the sets overlap.
	for hi, hub := range hubs {
		offset := hi * followerCount / 4
		for i := 0; i < followerCount/2; i++ {
			f := followers[(offset+i)%followerCount]
			_, _ = followRepo.Create(ctx, f.ID, hub.ID)
			_ = fanRepo.Create(ctx, hub.ID, f.ID)
		}
	}
	fmt.Printf("Seeded %d hubs, %d followers\n", hubCount, followerCount)

	uncached := service.NewRelationshipService(db, userRepo, followRepo, fanRepo, nil)
	snapshots := cache.NewFollowerCache(client, userRepo, cfg.Redis.CacheTTL)
	cached := service.NewRelationshipService(db, userRepo, followRepo, fanRepo, snapshots)

	rng := rand.New(rand.NewSource(42))
	targets := make([]string, requestCount)
	for i := range targets {
		targets[i] = hubs[rng.Intn(hubCount)].ID
	}

	cold := run(ctx, client, targets, uncached)
	warm := run(ctx, client, targets, cached)

	fmt.Printf("\nFollower list latency (%d req across %d hubs, %d followers each)\n",
		requestCount, hubCount, followerCount/2)
	report("No cache", cold)
	report("Redis cache", warm)
}

type result struct {
	durations []time.Duration
	cacheKeys int
	memory    int64
}

func run(ctx context.Context, client *redis.Client, targets []string, svc service.RelationshipService) result {
	client.FlushAll(ctx)

	// warm pass so the cached variant is measured on hits
	for _, id := range targets[:len(targets)/10] {
		must(svc.ListFollowers(ctx, id))
	}

	out := make([]time.Duration, 0, len(targets))
	for _, id := range targets {
		st := time.Now()
		must(svc.ListFollowers(ctx, id))
		out = append(out, time.Since(st))
	}

	keys := must(client.Keys(ctx, "*").Result())
	var mem int64
	if info, err := client.Info(ctx, "memory").Result(); err == nil {
		mem = parseRedisMemory(info)
	}
	return result{durations: out, cacheKeys: len(keys), memory: mem}
}

func report(name string, r result) {
	fmt.Printf("%-12s avg=%v p95=%v p99=%v cache_keys=%d mem=%s\n",
		name, avg(r.durations), pct(r.durations, 0.95), pct(r.durations, 0.99),
		r.cacheKeys, formatBytes(r.memory))
}

// parseRedisMemory extracts used_memory from INFO memory output.
func parseRedisMemory(info string) int64 {
	lines := []rune(info)
	var result int64
	for i := 0; i < len(lines); {
		if i+12 < len(lines) && string(lines[i:i+12]) == "used_memory:" {
			i += 12
			var num int64
			for i < len(lines) && lines[i] >= '0' && lines[i] <= '9' {
				num = num*10 + int64(lines[i]-'0')
				i++
			}
			result = num
			break
		}
		i++
	}
	return result
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func avg(vs []time.Duration) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range vs {
		sum += v
	}
	return sum / time.Duration(len(vs))
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), vs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
