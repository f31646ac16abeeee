package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const redisKeyPrefix = "sessao:"

// RedisStore mantém sessões no Redis para deploys com mais de um nó.
// O TTL da chave acompanha o ExpiresAt da sessão.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (r *RedisStore) Create(ctx context.Context, s Session) (string, error) {
	token := uuid.NewString()
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = time.Now().Add(r.ttl)
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}

	ttl := time.Until(s.ExpiresAt)
	if err := r.client.Set(ctx, redisKeyPrefix+token, payload, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := r.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, err
	}
	if time.Now().After(s.ExpiresAt) {
		_ = r.client.Del(ctx, redisKeyPrefix+token).Err()
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, redisKeyPrefix+token).Err()
}
