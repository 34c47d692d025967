package quotesRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"upsell/models"
)

const cacheKeyPrefix = "quote:"

func quoteKey(id string) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, id)
}

type RedisQuoteRepo struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisQuoteRepo(client *redis.Client) QuoteRepository {
	return &RedisQuoteRepo{client: client, now: time.Now}
}

// Save stores the quote with a TTL matching its expiry.
func (r *RedisQuoteRepo) Save(ctx context.Context, quote models.Quote) error {
	ttl := quote.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("quote %s already expired", quote.ID)
	}
	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}
	return r.client.Set(ctx, quoteKey(quote.ID), data, ttl).Err()
}

func (r *RedisQuoteRepo) Get(ctx context.Context, id string) (*models.Quote, error) {
	val, err := r.client.Get(ctx, quoteKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var quote models.Quote
	if err := json.Unmarshal([]byte(val), &quote); err != nil {
		return nil, fmt.Errorf("failed to parse quote %s: %w", id, err)
	}
	return &quote, nil
}

func (r *RedisQuoteRepo) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, quoteKey(id)).Err()
}
