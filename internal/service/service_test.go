package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/database"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     "USER",
	}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), u))
	return u
}

func newEngagement(db *gorm.DB) EngagementService {
	return NewEngagementService(
		db,
		repository.NewUserRepository(db),
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
		repository.NewLikeRepository(db),
		repository.NewFollowRepository(db),
	)
}

func newRelations(db *gorm.DB) RelationshipService {
	return NewRelationshipService(
		db,
		repository.NewUserRepository(db),
		repository.NewFollowRepository(db),
		repository.NewFanRepository(db),
		nil,
	)
}
