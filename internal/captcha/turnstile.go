package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultSiteverifyURL - эндпоинт проверки Cloudflare Turnstile
const DefaultSiteverifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// TurnstileVerifier проверяет CAPTCHA-токены через siteverify эндпоинт.
// Любая сетевая ошибка или неуспешный ответ трактуется как отказ (fail closed).
type TurnstileVerifier struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
	logger     *logrus.Logger
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// NewTurnstileVerifier создает новый TurnstileVerifier.
// Пустой verifyURL означает стандартный эндпоинт Cloudflare.
func NewTurnstileVerifier(secret, verifyURL string, timeout time.Duration, logger *logrus.Logger) *TurnstileVerifier {
	if verifyURL == "" {
		verifyURL = DefaultSiteverifyURL
	}
	return &TurnstileVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Verify отправляет токен на siteverify и возвращает результат проверки.
// false без ошибки - токен отвергнут сервисом; ошибка - проверить не удалось.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to create siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode siteverify response: %w", err)
	}

	if !result.Success {
		v.logger.WithField("error_codes", result.ErrorCodes).Warn("Turnstile token rejected")
	}

	return result.Success, nil
}
