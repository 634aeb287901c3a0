package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
)

func newAccounts(t *testing.T) AccountService {
	t.Helper()
	db := setupDB(t)
	return NewAccountService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAccounts(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter22", user.Password)

	token, logged, err := svc.Login(ctx, "alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	uid, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)
}

func TestRegisterDuplicates(t *testing.T) {
	svc := newAccounts(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	_, err = svc.Register(ctx, "alice2", "alice@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAccounts(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, _, err = svc.Login(ctx, "nobody", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newAccounts(t)
	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestUpdateProfileOwnership(t *testing.T) {
	db := setupDB(t)
	svc := NewAccountService(repository.NewUserRepository(db), "s", time.Hour)
	ctx := context.Background()

	alice, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	bob, err := svc.Register(ctx, "bob", "bob@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, alice.ID, bob.ID, "hacked", "")
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateProfile(ctx, alice.ID, alice.ID, "writes about go", "")
	require.NoError(t, err)
	assert.Equal(t, "writes about go", updated.Description)
	assert.Equal(t, "alice", updated.Username)
}
