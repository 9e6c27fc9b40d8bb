package session

import (
	"context"
	"errors"
	"fmt"
	"log"

	"payonom_bridge/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

// tokenKey is the single well-known session key the correlation token lives
// under. Each new payment attempt overwrites the previous value; there is no
// TTL because tokens are superseded implicitly.
const tokenKey = "payonom_token"

const cartKey = "cart"

// RedisSessionStore keeps per-shopper session state in Redis.

type RedisSessionStore struct {
	client *redis.Client
}

var _ interfaces.ISessionTokenStore = (*RedisSessionStore)(nil)
var _ interfaces.ICartService = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID, token string) error {
	return s.client.Set(ctx, sessionKey(sessionID, tokenKey), token, 0).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	v, err := s.client.Get(ctx, sessionKey(sessionID, tokenKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *RedisSessionStore) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID, cartKey)).Err(); err != nil {
		return err
	}
	log.Printf("[session][store] cart cleared session_id=%s", sessionID)
	return nil
}

func sessionKey(sessionID, field string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, field)
}
