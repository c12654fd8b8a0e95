package service

import "errors"

// Ошибки доменного уровня. Хэндлер сопоставляет их с HTTP-статусами через errors.Is,
// все остальное трактуется как внутренняя ошибка.
var (
	// Ошибки допуска (Anti-Abuse Gate)
	ErrBotDetected   = errors.New("automated submission detected")
	ErrCaptchaFailed = errors.New("captcha verification failed")
	ErrRateLimited   = errors.New("rate limit exceeded")

	// Ошибки поиска. Наружу уходят обобщенными, чтобы не раскрывать, какая часть не нашлась
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrReportNotFound  = errors.New("report not found")

	// Ошибки верификации кода
	ErrAlreadySubmitted = errors.New("report already submitted")
	ErrCodeExpired      = errors.New("verification code expired")
	ErrCodeMismatch     = errors.New("invalid verification code")

	// Ошибки внешних зависимостей
	ErrSMSDispatch = errors.New("sms dispatch failed")
)
