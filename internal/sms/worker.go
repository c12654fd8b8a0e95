package sms

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker - структура для обработки очереди и отправки SMS через внешний шлюз
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.SMSTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди SMS
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting sms dispatch worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping sms dispatch worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из очереди, 0 - бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, smsQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop sms message from Redis")
					time.Sleep(w.cfg.SMSTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var msg Message
				if err := json.Unmarshal([]byte(payload), &msg); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal sms message from Redis")
					continue
				}

				w.processMessage(ctx, msg)
			}
		}
	}()
}

// gatewayRequest - полезная нагрузка, которую ожидает внешний SMS-шлюз
type gatewayRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

func (w *Worker) processMessage(ctx context.Context, msg Message) {
	log := w.logger.WithField("report_id", msg.ReportID).WithField("phone", msg.Phone)
	log.Debug("Processing sms message...")

	if w.cfg.SMSGatewayURL == "" {
		log.Warn("SMS gateway URL is not configured. Skipping sms delivery.")
		return
	}

	body, err := json.Marshal(gatewayRequest{Phone: msg.Phone, Code: msg.Code})
	if err != nil {
		log.WithError(err).Error("Failed to marshal sms gateway request")
		return
	}

	maxRetries := w.cfg.SMSMaxRetries
	baseDelay := w.cfg.SMSBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.SMSGatewayURL, bytes.NewBuffer(body))
		if err != nil {
			log.WithError(err).Errorf("Failed to create sms gateway request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если SMS_GATEWAY_SECRET задан
		if w.cfg.SMSGatewaySecret != "" {
			signature := generateHMACSHA256(string(body), w.cfg.SMSGatewaySecret)
			req.Header.Set("X-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send sms. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("SMS delivered to gateway successfully.")
			return
		}

		log.Warnf("SMS gateway returned status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver sms after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
