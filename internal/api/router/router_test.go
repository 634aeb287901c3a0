package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Gaurav-Shaw09/PenFolio/config"
	"github.com/Gaurav-Shaw09/PenFolio/internal/api/handler"
	"github.com/Gaurav-Shaw09/PenFolio/internal/cache"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
	"github.com/Gaurav-Shaw09/PenFolio/internal/service"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/database"
)

type testEnv struct {
	engine *gin.Engine
	worker *service.NotificationWorker
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	fanRepo := repository.NewFanRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatRepository(db)
	eventRepo := repository.NewEventRepository(db)

	snapshots := cache.NewFollowerCache(rdb, userRepo, time.Minute)
	accounts := service.NewAccountService(userRepo, "test-secret", time.Hour)
	relations := service.NewRelationshipService(db, userRepo, followRepo, fanRepo, snapshots)
	engagement := service.NewEngagementService(db, userRepo, postRepo, commentRepo, likeRepo, followRepo)
	notifications := service.NewNotificationService(notifRepo)
	chat := service.NewChatService(chatRepo, userRepo, rdb)
	otp := service.NewOTPService(rdb, nil, time.Minute)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode, RateLimitRPS: 1000, RateLimitBurst: 1000},
		Otel:   config.OtelConfig{Service: "penfolio-test"},
	}
	h := handler.New(accounts, relations, engagement, notifications, chat, otp)
	worker := service.NewNotificationWorker(eventRepo, notifications, 1, 64, time.Millisecond)
	return &testEnv{engine: New(cfg, h, accounts), worker: worker}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)

	var envelope map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec.Code, envelope
}

func (e *testEnv) register(t *testing.T, username string) (id, token string) {
	t.Helper()
	code, resp := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, code)
	id = resp["data"].(map[string]any)["id"].(string)

	code, resp = e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, code)
	token = resp["data"].(map[string]any)["token"].(string)
	return id, token
}

func TestAuthRequired(t *testing.T) {
	env := setupEnv(t)
	code, _ := env.do(t, http.MethodPost, "/api/relations/follow", "", gin.H{
		"followerId": "a", "targetId": "b",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRegisterRejectsBadUsername(t *testing.T) {
	env := setupEnv(t)
	code, _ := env.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "no spaces!",
		"email":    "x@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestEngagementFlow(t *testing.T) {
	env := setupEnv(t)
	aliceID, aliceToken := env.register(t, "alice")
	bobID, bobToken := env.register(t, "bob")

	// bob follows alice
	code, _ := env.do(t, http.MethodPost, "/api/relations/follow", bobToken, gin.H{
		"followerId": bobID, "targetId": aliceID,
	})
	require.Equal(t, http.StatusOK, code)

	code, resp := env.do(t, http.MethodGet, "/api/relations/"+aliceID+"/followers", bobToken, nil)
	require.Equal(t, http.StatusOK, code)
	followers := resp["data"].([]any)
	require.Len(t, followers, 1)
	assert.Equal(t, "bob", followers[0].(map[string]any)["username"])

	// alice posts, bob likes and comments
	code, resp = env.do(t, http.MethodPost, "/api/posts", aliceToken, gin.H{
		"title": "First Post", "content": "hello",
	})
	require.Equal(t, http.StatusOK, code)
	postID := resp["data"].(map[string]any)["id"].(string)

	code, resp = env.do(t, http.MethodPost, "/api/posts/"+postID+"/like", bobToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, resp["data"].(map[string]any)["likes"])

	code, _ = env.do(t, http.MethodPost, "/api/posts/"+postID+"/comments", bobToken, gin.H{
		"content": "nice",
	})
	require.Equal(t, http.StatusOK, code)

	// bob's follow shows up in his feed
	code, resp = env.do(t, http.MethodGet, "/api/posts/following", bobToken, nil)
	require.Equal(t, http.StatusOK, code)
	feed := resp["data"].([]any)
	require.Len(t, feed, 1)
	assert.Equal(t, "First Post", feed[0].(map[string]any)["title"])

	// drain the outbox, then alice sees follow + like + comment notifications
	require.NoError(t, env.worker.ProcessOnce(context.Background()))
	code, resp = env.do(t, http.MethodGet, "/api/notifications/"+aliceID, aliceToken, nil)
	require.Equal(t, http.StatusOK, code)
	notifs := resp["data"].([]any)
	require.Len(t, notifs, 3)
	messages := make([]string, len(notifs))
	for i, n := range notifs {
		messages[i] = n.(map[string]any)["message"].(string)
	}
	assert.Contains(t, messages, "bob followed you")
	assert.Contains(t, messages, "bob liked First Post")
	assert.Contains(t, messages, "bob commented on First Post")
}

func TestChatFlow(t *testing.T) {
	env := setupEnv(t)
	aliceID, aliceToken := env.register(t, "alice")
	bobID, bobToken := env.register(t, "bob")

	code, _ := env.do(t, http.MethodPost, "/api/messages", aliceToken, gin.H{
		"to": bobID, "text": "hi bob",
	})
	require.Equal(t, http.StatusOK, code)

	for _, tok := range []string{aliceToken, bobToken} {
		code, resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/messages/%s/%s", bobID, aliceID), tok, nil)
		require.Equal(t, http.StatusOK, code)
		msgs := resp["data"].([]any)
		require.Len(t, msgs, 1)
		assert.Equal(t, "hi bob", msgs[0].(map[string]any)["text"])
	}
}
