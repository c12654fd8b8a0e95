package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result - результат проверки лимита для одного запроса
type Result struct {
	Allowed   bool          `json:"allowed"`
	Remaining int           `json:"remaining"`
	Reset     time.Duration `json:"reset"`
}

// Limiter реализует fixed-window счетчик поверх Redis.
// Ключ: ratelimit:<bucket>:<identifier>. Счетчик мутируется только атомарным INCR,
// TTL окна выставляется один раз - на инкременте, создавшем ключ.
type Limiter struct {
	redisClient *redis.Client
}

// NewLimiter создает новый Limiter
func NewLimiter(redisClient *redis.Client) *Limiter {
	return &Limiter{
		redisClient: redisClient,
	}
}

// Check инкрементирует счетчик для identifier в рамках bucket и сравнивает с лимитом.
// При недоступности Redis ошибка пробрасывается наверх - вызывающий код обязан
// трактовать ее как отказ (fail closed), а не как разрешение.
func (l *Limiter) Check(ctx context.Context, bucket, identifier string, limit int, window time.Duration) (*Result, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", bucket, identifier)

	count, err := l.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// TTL выставляется только инкрементом, создавшим ключ;
	// инкременты 2..N внутри окна срок не продлевают
	if count == 1 {
		if err := l.redisClient.Expire(ctx, key, window).Err(); err != nil {
			return nil, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	ttl, err := l.redisClient.TTL(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read rate limit window ttl: %w", err)
	}

	// Ключ без TTL возможен после падения между INCR и EXPIRE - окно так и не было задано
	if ttl < 0 {
		if err := l.redisClient.Expire(ctx, key, window).Err(); err != nil {
			return nil, fmt.Errorf("failed to restore rate limit window: %w", err)
		}
		ttl = window
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   int(count) <= limit,
		Remaining: remaining,
		Reset:     ttl,
	}, nil
}
