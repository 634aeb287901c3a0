package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/logger"
)

// ChatService relays 1:1 messages. The persisted row is the durable source
// of truth; live delivery goes over a per-conversation redis topic and is
// best-effort at-most-once, so a disconnected subscriber catches up through
// History.
type ChatService interface {
	Send(ctx context.Context, fromID, toID, text string) (*model.ChatMessage, error)
	History(ctx context.Context, userA, userB string) ([]*model.ChatMessage, error)
	// Subscribe yields live messages for the conversation until ctx is
	// cancelled. The returned channel is closed on cancel.
	Subscribe(ctx context.Context, userA, userB string) (<-chan model.ChatMessage, error)
}

type chatService struct {
	repo     repository.ChatRepository
	userRepo repository.UserRepository
	rdb      *redis.Client
}

func NewChatService(repo repository.ChatRepository, userRepo repository.UserRepository, rdb *redis.Client) ChatService {
	return &chatService{repo: repo, userRepo: userRepo, rdb: rdb}
}

// Send persists the message with a server-assigned timestamp, then publishes
// it to the conversation topic. A publish failure is logged, not returned:
// the durable write already succeeded.
func (s *chatService) Send(ctx context.Context, fromID, toID, text string) (*model.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message text is required", ErrValidation)
	}
	for _, id := range []string{fromID, toID} {
		u, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrNotFound
		}
	}

	msg := &model.ChatMessage{
		ID:        uuid.New().String(),
		FromID:    fromID,
		ToID:      toID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(msg)
	if err == nil {
		err = s.rdb.Publish(ctx, ConversationTopic(fromID, toID), payload).Err()
	}
	if err != nil {
		logger.Warn("chat publish failed, live subscribers miss this message",
			zap.String("from", fromID), zap.String("to", toID), zap.Error(err))
	}
	return msg, nil
}

func (s *chatService) History(ctx context.Context, userA, userB string) ([]*model.ChatMessage, error) {
	return s.repo.History(ctx, userA, userB)
}

func (s *chatService) Subscribe(ctx context.Context, userA, userB string) (<-chan model.ChatMessage, error) {
	sub := s.rdb.Subscribe(ctx, ConversationTopic(userA, userB))
	// confirm the subscription before handing out the channel
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan model.ChatMessage, 16)
	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				var msg model.ChatMessage
				if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
					logger.Warn("dropping malformed chat payload", zap.Error(err))
					continue
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// ConversationTopic names the broadcast topic for a pair of users. The pair
// is ordered so both sides land on the same topic, keeping live delivery
// scoped to the conversation that History persists.
func ConversationTopic(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return fmt.Sprintf("chat:%s:%s", userA, userB)
}
