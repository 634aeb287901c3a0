package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
)

func TestFollowSelfFails(t *testing.T) {
	db := setupDB(t)
	svc := newRelations(db)
	u := seedUser(t, db, "alice")

	err := svc.Follow(context.Background(), u.ID, u.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestFollowTwiceConflicts(t *testing.T) {
	db := setupDB(t)
	svc := newRelations(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))
	err := svc.Follow(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)

	followers, err := svc.ListFollowers(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a.ID, followers[0].ID)
}

func TestFollowUnknownUser(t *testing.T) {
	db := setupDB(t)
	svc := newRelations(db)
	a := seedUser(t, db, "alice")

	err := svc.Follow(context.Background(), a.ID, "no-such-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	db := setupDB(t)
	svc := newRelations(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))
	require.NoError(t, svc.Unfollow(ctx, a.ID, b.ID))

	followers, err := svc.ListFollowers(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
	following, err := svc.ListFollowing(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, following)

	// both tables are clean, not just one side
	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
	require.NoError(t, db.Model(&model.Fan{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestUnfollowMissingEdgeIsNoop(t *testing.T) {
	db := setupDB(t)
	svc := newRelations(db)
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	assert.NoError(t, svc.Unfollow(context.Background(), a.ID, b.ID))
}

func TestListFollowersInsertionOrder(t *testing.T) {
	db := setupDB(t)
	svc := newRelations(db)
	ctx := context.Background()
	target := seedUser(t, db, "celebrity")
	names := []string{"u1", "u2", "u3"}
	var ids []string
	for _, n := range names {
		u := seedUser(t, db, n)
		require.NoError(t, svc.Follow(ctx, u.ID, target.ID))
		ids = append(ids, u.ID)
	}

	followers, err := svc.ListFollowers(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, followers, 3)
	for i, f := range followers {
		assert.Equal(t, ids[i], f.ID)
		assert.Equal(t, names[i], f.Username)
	}
}

func TestFollowEmitsEvent(t *testing.T) {
	db := setupDB(t)
	svc := newRelations(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))

	var events []model.EngagementEvent
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, model.NotificationFollow, events[0].Kind)
	assert.Equal(t, b.ID, events[0].RecipientID)
	assert.Equal(t, a.ID, events[0].ActorID)
	assert.Equal(t, "alice followed you", events[0].Message)

	// unfollow emits nothing
	require.NoError(t, svc.Unfollow(ctx, a.ID, b.ID))
	require.NoError(t, db.Find(&events).Error)
	assert.Len(t, events, 1)
}

func TestReconcilerRepairsDivergence(t *testing.T) {
	db := setupDB(t)
	svc := newRelations(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")
	c := seedUser(t, db, "carol")

	require.NoError(t, svc.Follow(ctx, a.ID, b.ID))
	require.NoError(t, svc.Follow(ctx, c.ID, b.ID))

	// simulate a half-applied write on both sides
	require.NoError(t, db.Where("user_id = ? AND fan_id = ?", b.ID, a.ID).Delete(&model.Fan{}).Error)
	require.NoError(t, db.Where("follower_id = ? AND followee_id = ?", c.ID, b.ID).Delete(&model.Follow{}).Error)

	rec := NewGraphReconciler(db, repository.NewFanRepository(db), 0)
	repaired, err := rec.ReconcileOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repaired)

	followers, err := svc.ListFollowers(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a.ID, followers[0].ID)

	// a clean graph needs no repairs
	repaired, err = rec.ReconcileOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, repaired)
}
