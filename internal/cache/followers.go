package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
)

// ListKind selects which side of the graph an index caches.
type ListKind string

const (
	KindFollowers ListKind = "followers"
	KindFollowing ListKind = "following"
)

// FollowerCache keeps per-user id indexes as redis lists plus per-user
// summary snapshots, so follower pages are served with LRANGE + MGET instead
// of a join. It is a read-through view over the graph tables and is
// invalidated explicitly on every follow/unfollow write.
type FollowerCache struct {
	rdb   *redis.Client
	users repository.UserRepository
	ttl   time.Duration
}

func NewFollowerCache(rdb *redis.Client, users repository.UserRepository, ttl time.Duration) *FollowerCache {
	return &FollowerCache{rdb: rdb, users: users, ttl: ttl}
}

// Get returns the summaries for kind's index of userID, loading ids through
// load on a cache miss.
func (c *FollowerCache) Get(ctx context.Context, kind ListKind, userID string, load func(context.Context) ([]string, error)) ([]model.UserSummary, error) {
	key := indexKey(kind, userID)

	var ids []string
	if exists, _ := c.rdb.Exists(ctx, key).Result(); exists > 0 {
		ids, _ = c.rdb.LRange(ctx, key, 0, -1).Result()
	}

	if len(ids) == 0 {
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		ids = loaded
		if len(ids) > 0 {
			pipe := c.rdb.Pipeline()
			pipe.Del(ctx, key)
			pipe.RPush(ctx, key, toAnySlice(ids)...)
			pipe.Expire(ctx, key, c.ttl)
			_, _ = pipe.Exec(ctx)
		}
	}

	return c.loadSummaries(ctx, ids)
}

// Invalidate drops both index lists and the snapshot for each user.
func (c *FollowerCache) Invalidate(ctx context.Context, userIDs ...string) {
	if len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs)*3)
	for _, id := range userIDs {
		keys = append(keys,
			indexKey(KindFollowers, id),
			indexKey(KindFollowing, id),
			snapshotKey(id),
		)
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

// loadSummaries resolves ids through the snapshot cache, bulk-loading the
// misses from the user store. Output order follows ids.
func (c *FollowerCache) loadSummaries(ctx context.Context, ids []string) ([]model.UserSummary, error) {
	if len(ids) == 0 {
		return []model.UserSummary{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = snapshotKey(id)
	}

	found := make(map[string]model.UserSummary, len(ids))
	if vals, err := c.rdb.MGet(ctx, keys...).Result(); err == nil {
		for i, v := range vals {
			str, ok := v.(string)
			if !ok {
				continue
			}
			var snap model.UserSummary
			if err := json.Unmarshal([]byte(str), &snap); err == nil {
				found[ids[i]] = snap
			}
		}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		users, err := c.users.GetByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			snap := model.UserSummary{ID: u.ID, Username: u.Username, Description: u.Description}
			found[u.ID] = snap
			if payload, err := json.Marshal(snap); err == nil {
				_ = c.rdb.Set(ctx, snapshotKey(u.ID), payload, c.ttl).Err()
			}
		}
	}

	out := make([]model.UserSummary, 0, len(ids))
	for _, id := range ids {
		if snap, ok := found[id]; ok {
			out = append(out, snap)
		}
	}
	return out, nil
}

func indexKey(kind ListKind, userID string) string {
	return fmt.Sprintf("%s:index:%s", kind, userID)
}

func snapshotKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func toAnySlice(strs []string) []interface{} {
	out := make([]interface{}, len(strs))
	for i, s := range strs {
		out[i] = s
	}
	return out
}
