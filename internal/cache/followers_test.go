package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
)

// stubUsers serves GetByIDs from a fixed map and counts bulk loads.
type stubUsers struct {
	users map[string]*model.User
	loads int
}

func (s *stubUsers) Create(ctx context.Context, user *model.User) error { return nil }
func (s *stubUsers) Update(ctx context.Context, user *model.User) error { return nil }
func (s *stubUsers) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.users[id], nil
}
func (s *stubUsers) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, errors.New("not implemented")
}
func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, errors.New("not implemented")
}
func (s *stubUsers) GetByIDs(ctx context.Context, ids []string) ([]*model.User, error) {
	s.loads++
	out := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func newCache(t *testing.T) (*FollowerCache, *stubUsers, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	users := &stubUsers{users: map[string]*model.User{
		"u1": {ID: "u1", Username: "alice", Description: "writes about go"},
		"u2": {ID: "u2", Username: "bob"},
	}}
	return NewFollowerCache(rdb, users, time.Minute), users, mr
}

func TestGetMissLoadsAndPopulates(t *testing.T) {
	c, users, mr := newCache(t)
	ctx := context.Background()

	loaderCalls := 0
	load := func(ctx context.Context) ([]string, error) {
		loaderCalls++
		return []string{"u1", "u2"}, nil
	}

	got, err := c.Get(ctx, KindFollowers, "u9", load)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, "bob", got[1].Username)
	assert.Equal(t, 1, loaderCalls)
	assert.Equal(t, 1, users.loads)
	assert.True(t, mr.Exists("followers:index:u9"))

	// Second read is served from redis end to end.
	got, err = c.Get(ctx, KindFollowers, "u9", load)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, loaderCalls)
	assert.Equal(t, 1, users.loads)
}

func TestGetEmptyList(t *testing.T) {
	c, _, _ := newCache(t)

	got, err := c.Get(context.Background(), KindFollowing, "u9", func(ctx context.Context) ([]string, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetLoaderError(t *testing.T) {
	c, _, _ := newCache(t)

	_, err := c.Get(context.Background(), KindFollowers, "u9", func(ctx context.Context) ([]string, error) {
		return nil, errors.New("db down")
	})
	assert.Error(t, err)
}

func TestInvalidateDropsIndexesAndSnapshots(t *testing.T) {
	c, _, mr := newCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, KindFollowers, "u9", func(ctx context.Context) ([]string, error) {
		return []string{"u1"}, nil
	})
	require.NoError(t, err)
	require.True(t, mr.Exists("followers:index:u9"))
	require.True(t, mr.Exists("user:u1"))

	c.Invalidate(ctx, "u9", "u1")

	assert.False(t, mr.Exists("followers:index:u9"))
	assert.False(t, mr.Exists("following:index:u9"))
	assert.False(t, mr.Exists("user:u1"))

	// Next read loads fresh.
	calls := 0
	_, err = c.Get(ctx, KindFollowers, "u9", func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"u1"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSnapshotSkipsUnknownUsers(t *testing.T) {
	c, _, _ := newCache(t)

	got, err := c.Get(context.Background(), KindFollowers, "u9", func(ctx context.Context) ([]string, error) {
		return []string{"u1", "ghost"}, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].ID)
}
