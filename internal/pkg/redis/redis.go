package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"phoenix-booking-service/config"

	"github.com/redis/go-redis/v9"
)

func Addr(cfg *config.RedisConfig) string {
	return fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
}

func SetupClient(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     Addr(cfg),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed on %s: %v", Addr(cfg), err)
	}

	return client
}
