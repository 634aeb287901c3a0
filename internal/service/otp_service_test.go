package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	to, body string
}

func (c *captureSender) Send(_ context.Context, to, _ string, body string) error {
	c.to, c.body = to, body
	return nil
}

func TestOTPIssueAndVerify(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sender := &captureSender{}
	svc := NewOTPService(rdb, sender, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "a@example.com"))
	assert.Equal(t, "a@example.com", sender.to)

	code, err := rdb.Get(ctx, "otp:a@example.com").Result()
	require.NoError(t, err)
	require.Len(t, code, 6)
	assert.Contains(t, sender.body, code)

	ok, err := svc.Verify(ctx, "a@example.com", "000000x")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Verify(ctx, "a@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)

	// single use
	ok, err = svc.Verify(ctx, "a@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	svc := NewOTPService(rdb, nil, time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, "a@example.com"))
	code, err := rdb.Get(ctx, "otp:a@example.com").Result()
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	ok, err := svc.Verify(ctx, "a@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}
