package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

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

// seed fills the database with demo accounts, a follow graph and some
// engagement, going through the real services so every invariant holds.
func main() {
	cfg := must(config.Load())
	_ = logger.Init("debug")
	db := must(database.InitDB(cfg))

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	fanRepo := repository.NewFanRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	relSvc := service.NewRelationshipService(db, userRepo, followRepo, fanRepo, nil)
	engSvc := service.NewEngagementService(db, userRepo, postRepo, commentRepo, likeRepo, followRepo)

	ctx := context.Background()

	n := 20
	if s := os.Getenv("N"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			n = v
		}
	}

	hash := must(bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost))
	users := make([]*model.User, n)
	for i := 0; i < n; i++ {
		u := &model.User{
			ID:       uuid.New().String(),
			Username: fmt.Sprintf("writer%02d", i),
			Email:    fmt.Sprintf("writer%02d@example.com", i),
			Password: string(hash),
			Role:     "USER",
		}
		must(0, userRepo.Create(ctx, u))
		users[i] = u
	}

	// everyone follows writer00, writer00 follows the first few back
	for i := 1; i < n; i++ {
		must(0, relSvc.Follow(ctx, users[i].ID, users[0].ID))
	}
	for i := 1; i < n && i <= 5; i++ {
		must(0, relSvc.Follow(ctx, users[0].ID, users[i].ID))
	}

	for i := 0; i < n; i++ {
		post := must(engSvc.CreatePost(ctx, users[i].ID, fmt.Sprintf("Post %02d", i), "hello from "+users[i].Username, ""))
		if i > 0 {
			must(engSvc.ToggleLike(ctx, post.ID, users[i-1].ID))
			must(engSvc.AddComment(ctx, post.ID, users[i-1].ID, "nice one"))
		}
	}

	fmt.Printf("seeded %d users with follows, posts, likes and comments\n", n)
}
