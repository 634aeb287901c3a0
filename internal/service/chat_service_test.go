package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
)

func setupChat(t *testing.T) (ChatService, *gorm.DB) {
	t.Helper()
	db := setupDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewChatService(repository.NewChatRepository(db), repository.NewUserRepository(db), rdb), db
}

func TestSendAssignsServerTimestamp(t *testing.T) {
	svc, db := setupChat(t)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	before := time.Now().UTC()
	msg, err := svc.Send(ctx, a.ID, b.ID, "hi")
	require.NoError(t, err)
	after := time.Now().UTC()

	assert.False(t, msg.Timestamp.Before(before))
	assert.False(t, msg.Timestamp.After(after))
	assert.Equal(t, a.ID, msg.FromID)
	assert.Equal(t, b.ID, msg.ToID)
}

func TestSendValidation(t *testing.T) {
	svc, db := setupChat(t)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	_, err := svc.Send(ctx, a.ID, b.ID, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Send(ctx, a.ID, "nobody", "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistorySymmetric(t *testing.T) {
	svc, db := setupChat(t)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")
	c := seedUser(t, db, "carol")

	_, err := svc.Send(ctx, a.ID, b.ID, "one")
	require.NoError(t, err)
	_, err = svc.Send(ctx, b.ID, a.ID, "two")
	require.NoError(t, err)
	_, err = svc.Send(ctx, a.ID, c.ID, "other conversation")
	require.NoError(t, err)

	ab, err := svc.History(ctx, a.ID, b.ID)
	require.NoError(t, err)
	ba, err := svc.History(ctx, b.ID, a.ID)
	require.NoError(t, err)

	require.Len(t, ab, 2)
	require.Equal(t, len(ab), len(ba))
	for i := range ab {
		assert.Equal(t, ab[i].ID, ba[i].ID)
	}
	// ascending by timestamp
	assert.Equal(t, "one", ab[0].Text)
	assert.Equal(t, "two", ab[1].Text)
}

func TestSubscribeReceivesLiveMessages(t *testing.T) {
	svc, db := setupChat(t)
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := svc.Subscribe(ctx, b.ID, a.ID)
	require.NoError(t, err)

	sent, err := svc.Send(ctx, a.ID, b.ID, "live")
	require.NoError(t, err)

	select {
	case got := <-ch:
		assert.Equal(t, sent.ID, got.ID)
		assert.Equal(t, "live", got.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("no live message received")
	}

	cancel()
	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestConversationTopicOrderIndependent(t *testing.T) {
	assert.Equal(t, ConversationTopic("a", "b"), ConversationTopic("b", "a"))
	assert.NotEqual(t, ConversationTopic("a", "b"), ConversationTopic("a", "c"))
}
