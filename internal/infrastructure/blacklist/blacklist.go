package blacklist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store guarda tokens revogados até expirarem
type Store interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

// RedisStore mantém a blacklist no Redis. Com client nil vira no-op (ambiente de desenvolvimento).
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore cria uma nova instância de RedisStore
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Connect cria o cliente Redis e valida com ping
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar no Redis: %w", err)
	}
	log.Println("✅ Redis conectado")
	return client, nil
}

func key(token string) string {
	return "blacklist:" + token
}

func (s *RedisStore) Add(ctx context.Context, token string, ttl time.Duration) error {
	if s.client == nil {
		log.Println("⚠️ Redis não configurado: logout não revoga o token, que continua válido até expirar")
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("erro ao revogar token: %w", err)
	}
	return nil
}

func (s *RedisStore) Contains(ctx context.Context, token string) (bool, error) {
	if s.client == nil {
		return false, nil
	}
	_, err := s.client.Get(ctx, key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("erro ao consultar blacklist: %w", err)
	}
	return true, nil
}
