package utils

import (
	"context"
	"fmt"
	"time"

	"upsell/config"

	"github.com/go-redis/redis/v8"
)

// QuoteCacheClient backs the quote store when QUOTE_STORE=redis.
var QuoteCacheClient *redis.Client

// InitQuoteCache connects the quote cache client and verifies it with a ping.
func InitQuoteCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQuoteDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (Quotes): %w", err)
	}
	QuoteCacheClient = client
	return nil
}

// GetQuoteCacheClient returns the quote cache client, connecting on first use.
func GetQuoteCacheClient() (*redis.Client, error) {
	if QuoteCacheClient == nil {
		if err := InitQuoteCache(); err != nil {
			return nil, err
		}
	}
	return QuoteCacheClient, nil
}
