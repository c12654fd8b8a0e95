package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	smsQueueKey = "sms_dispatch"
)

// Message - структура сообщения с кодом подтверждения
type Message struct {
	ReportID uuid.UUID `json:"report_id"`
	Phone    string    `json:"phone"`
	Code     string    `json:"code"`
	QueuedAt time.Time `json:"queued_at"`
}

// Publisher - интерфейс для постановки SMS в очередь отправки
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет сообщение в очередь отправки SMS в Redis
func (p *RedisPublisher) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal sms message: %w", err)
	}

	// LPUSH в очередь; воркер забирает сообщения с противоположного конца
	if err := p.redisClient.LPush(ctx, smsQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish sms message to Redis: %w", err)
	}
	return nil
}
