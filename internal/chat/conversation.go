package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const conversationKeyPrefix = "fitgenius-chat||"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ConversationStore keeps the running conversation of every user in a redis
// list. The list expires after ttl of inactivity.
type ConversationStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewConversationStore(redisClient *redis.Client, ttl time.Duration) *ConversationStore {
	return &ConversationStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func conversationKey(uid string) string {
	return conversationKeyPrefix + uid
}

func (cs *ConversationStore) Load(ctx context.Context, uid string) ([]Message, error) {
	cmd := cs.redisClient.LRange(ctx, conversationKey(uid), 0, -1)
	if err := cmd.Err(); err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	messages := make([]Message, 0, len(cmd.Val()))
	for _, raw := range cmd.Val() {
		var m Message
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			log.Warnf("conversation of user %s, skip broken message: %s", uid, err)
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (cs *ConversationStore) Append(ctx context.Context, uid string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]any, 0, len(messages))
	for _, m := range messages {
		raw, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, string(raw))
	}

	key := conversationKey(uid)
	if err := cs.redisClient.RPush(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("append conversation: %w", err)
	}
	if err := cs.redisClient.Expire(ctx, key, cs.ttl).Err(); err != nil {
		return fmt.Errorf("expire conversation: %w", err)
	}
	return nil
}

func (cs *ConversationStore) Reset(ctx context.Context, uid string) error {
	if err := cs.redisClient.Del(ctx, conversationKey(uid)).Err(); err != nil {
		return fmt.Errorf("reset conversation: %w", err)
	}
	return nil
}
