package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
)

func setupGraphBenchDB(b *testing.B) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Follow{}, &model.Fan{}); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	return db
}

func seedBenchUsers(b *testing.B, db *gorm.DB, n int) []model.User {
	users := make([]model.User, n)
	for i := range users {
		id := fmt.Sprintf("u%05d", i)
		users[i] = model.User{ID: id, Username: id, Email: id + "@example.com", Password: "p"}
	}
	if err := db.CreateInBatches(&users, 500).Error; err != nil {
		b.Fatalf("seed users: %v", err)
	}
	return users
}

func BenchmarkFollowWriteBothSides(b *testing.B) {
	db := setupGraphBenchDB(b)
	follows := NewFollowRepository(db)
	fans := NewFanRepository(db)
	ctx := context.Background()

	users := seedBenchUsers(b, db, 1000)
	rng := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[rng.Intn(len(users))].ID
		to := users[rng.Intn(len(users))].ID
		if from == to {
			continue
		}
		_, _ = follows.Create(ctx, from, to)
		_ = fans.Create(ctx, to, from)
	}
}

func BenchmarkGraphReads(b *testing.B) {
	db := setupGraphBenchDB(b)
	follows := NewFollowRepository(db)
	fans := NewFanRepository(db)
	ctx := context.Background()

	// One hub user following, and followed by, everyone else.
	const n = 5000
	users := seedBenchUsers(b, db, n+1)
	hub := users[0].ID
	for _, u := range users[1:] {
		_, _ = follows.Create(ctx, u.ID, hub)
		_ = fans.Create(ctx, hub, u.ID)
		_, _ = follows.Create(ctx, hub, u.ID)
		_ = fans.Create(ctx, u.ID, hub)
	}

	b.ResetTimer()
	b.Run("ListFans", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = fans.ListFans(ctx, hub)
		}
	})

	b.Run("FolloweeIDs", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = follows.FolloweeIDs(ctx, hub)
		}
	})
}
