package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bestie-chat/internal/model"
)

// redisRepository is an alternative storage backend for deployments without a
// writable filesystem. Entities are stored as JSON values, message ordering is
// kept in a per-conversation sorted set scored by creation time, and IDs are
// assigned from INCR counters.
type redisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

// Key generation helpers.
func (r *redisRepository) conversationKey(id int64) string { return fmt.Sprintf("conversation:%d", id) }
func (r *redisRepository) messageKey(id int64) string      { return fmt.Sprintf("message:%d", id) }
func (r *redisRepository) messagesKey(conversationID int64) string {
	return fmt.Sprintf("conversation:%d:messages", conversationID)
}

const (
	conversationIDCounter = "conversation:next_id"
	messageIDCounter      = "message:next_id"
)

func (r *redisRepository) CreateConversation(ctx context.Context, conversation *model.Conversation) error {
	if conversation.Title == "" {
		conversation.Title = model.DefaultConversationTitle
	}
	conversation.CreatedAt = time.Now().UTC()

	id, err := r.rdb.Incr(ctx, conversationIDCounter).Result()
	if err != nil {
		return fmt.Errorf("could not allocate conversation id: %w", err)
	}
	conversation.ID = id

	data, err := json.Marshal(conversation)
	if err != nil {
		return fmt.Errorf("could not encode conversation: %w", err)
	}
	return r.rdb.Set(ctx, r.conversationKey(id), data, 0).Err()
}

func (r *redisRepository) GetConversation(ctx context.Context, id int64) (*model.Conversation, error) {
	val, err := r.rdb.Get(ctx, r.conversationKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var conversation model.Conversation
	if err := json.Unmarshal([]byte(val), &conversation); err != nil {
		return nil, fmt.Errorf("could not decode conversation: %w", err)
	}
	return &conversation, nil
}

func (r *redisRepository) UpdateConversationTitle(ctx context.Context, id int64, title string) error {
	conversation, err := r.GetConversation(ctx, id)
	if err != nil {
		return err
	}
	conversation.Title = title

	data, err := json.Marshal(conversation)
	if err != nil {
		return fmt.Errorf("could not encode conversation: %w", err)
	}
	return r.rdb.Set(ctx, r.conversationKey(id), data, 0).Err()
}

func (r *redisRepository) CreateMessage(ctx context.Context, message *model.Message) error {
	message.CreatedAt = time.Now().UTC()

	id, err := r.rdb.Incr(ctx, messageIDCounter).Result()
	if err != nil {
		return fmt.Errorf("could not allocate message id: %w", err)
	}
	message.ID = id

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("could not encode message: %w", err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, r.messageKey(id), data, 0)
	pipe.ZAdd(ctx, r.messagesKey(message.ConversationID), redis.Z{
		Score:  float64(message.CreatedAt.UnixNano()),
		Member: id,
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetMessagesByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	ids, err := r.rdb.ZRange(ctx, r.messagesKey(conversationID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.Message{}, nil
		}
		return nil, err
	}

	messages := make([]model.Message, 0, len(ids))
	for _, id := range ids {
		val, err := r.rdb.Get(ctx, "message:"+id).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, err
		}
		var msg model.Message
		if err := json.Unmarshal([]byte(val), &msg); err != nil {
			return nil, fmt.Errorf("could not decode message %s: %w", id, err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
