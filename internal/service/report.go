package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/ratelimit"
	"github.com/shenikar/incident_reporting_system/internal/sms"
	"github.com/sirupsen/logrus"
)

// Имена bucket'ов rate limiter'а. У каждого действия свой бюджет,
// счетчики не пересекаются
const (
	bucketSubmit = "submit"
	bucketVerify = "verify"
	bucketResend = "resend"
)

// ReportRepository определяет контракт для работы с бд отчетов
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	MarkSubmitted(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (bool, error)
	UpdateCode(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error
	ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error)
	GetSubmittedStats(ctx context.Context, minutes int) (int, error)
}

// VehicleRepository определяет контракт для поиска транспортного средства по QR-токену
type VehicleRepository interface {
	GetByQRToken(ctx context.Context, qrToken string) (*models.Vehicle, error)
}

// RateLimiter определяет контракт fixed-window лимитера
type RateLimiter interface {
	Check(ctx context.Context, bucket, identifier string, limit int, window time.Duration) (*ratelimit.Result, error)
}

// CaptchaVerifier определяет контракт проверки CAPTCHA-токена
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// SubmitReportInput - данные публичной отправки отчета вместе с анти-абьюз полями
type SubmitReportInput struct {
	QRToken       string
	ReporterName  string
	ReporterPhone string
	ReporterEmail string
	Description   string
	IncidentType  string
	OccurredAt    time.Time
	Honeypot      string
	CaptchaToken  string
	ClientIP      string
}

// ReportService определяет контракт для бизнес-логики отчетов об инцидентах
type ReportService interface {
	LookupVehicle(ctx context.Context, qrToken string) (*models.Vehicle, error)
	SubmitReport(ctx context.Context, input SubmitReportInput) (*models.Report, bool, error)
	VerifyReport(ctx context.Context, id uuid.UUID, code, clientIP string) error
	ResendCode(ctx context.Context, id uuid.UUID, clientIP string) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error)
	GetStats(ctx context.Context) (int, error)
}

type reportService struct {
	reports  ReportRepository
	vehicles VehicleRepository
	limiter  RateLimiter
	captcha  CaptchaVerifier
	smsQueue sms.Publisher
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewReportService(
	reports ReportRepository,
	vehicles VehicleRepository,
	limiter RateLimiter,
	captcha CaptchaVerifier,
	smsQueue sms.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) ReportService {
	return &reportService{
		reports:  reports,
		vehicles: vehicles,
		limiter:  limiter,
		captcha:  captcha,
		smsQueue: smsQueue,
		logger:   logger,
		cfg:      cfg,
	}
}

// admit - решение о допуске: honeypot -> CAPTCHA -> rate limit.
// Каждая проверка обрывает цепочку, дешевая идет первой
func (s *reportService) admit(ctx context.Context, clientIP, honeypot, captchaToken string) error {
	if honeypot != "" {
		return ErrBotDetected
	}

	ok, err := s.captcha.Verify(ctx, captchaToken, clientIP)
	if err != nil {
		// Сервис проверки недоступен - отказываем, а не пропускаем
		return fmt.Errorf("%w: %v", ErrCaptchaFailed, err)
	}
	if !ok {
		return ErrCaptchaFailed
	}

	return s.checkBudget(ctx, bucketSubmit, clientIP, s.cfg.SubmitLimit, s.cfg.SubmitWindow)
}

// checkBudget проверяет бюджет действия для клиента. Ошибка хранилища
// пробрасывается наверх - допуска без учета не бывает
func (s *reportService) checkBudget(ctx context.Context, bucket, clientIP string, limit int, window time.Duration) error {
	result, err := s.limiter.Check(ctx, bucket, clientIP, limit, window)
	if err != nil {
		return fmt.Errorf("service: rate limit check failed: %w", err)
	}
	if !result.Allowed {
		return fmt.Errorf("%w: retry after %s", ErrRateLimited, result.Reset)
	}
	return nil
}

// LookupVehicle находит транспортное средство по QR-токену
func (s *reportService) LookupVehicle(ctx context.Context, qrToken string) (*models.Vehicle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "LookupVehicle",
	})

	vehicle, err := s.vehicles.GetByQRToken(ctx, qrToken)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve QR token")
		if errors.Is(err, ErrVehicleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not resolve qr token: %w", err)
	}
	return vehicle, nil
}

// SubmitReport проводит отправку через гейт допуска, создает черновик отчета
// и ставит код подтверждения в очередь отправки.
// Второе возвращаемое значение - удалось ли поставить SMS в очередь: неудача
// отправки не откатывает создание черновика, клиенту доступен resend
func (s *reportService) SubmitReport(ctx context.Context, input SubmitReportInput) (*models.Report, bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "SubmitReport",
		"client_ip": input.ClientIP,
	})
	log.Info("Attempting to submit a new incident report")

	if err := s.admit(ctx, input.ClientIP, input.Honeypot, input.CaptchaToken); err != nil {
		log.WithError(err).Warn("Submission rejected by admission gate")
		return nil, false, err
	}

	vehicle, err := s.vehicles.GetByQRToken(ctx, input.QRToken)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve QR token for submission")
		if errors.Is(err, ErrVehicleNotFound) {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("service: could not resolve qr token: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return nil, false, fmt.Errorf("service: %w", err)
	}

	report := &models.Report{
		VehicleID:        vehicle.ID,
		QRToken:          input.QRToken,
		ReporterName:     input.ReporterName,
		ReporterPhone:    input.ReporterPhone,
		ReporterEmail:    input.ReporterEmail,
		Description:      input.Description,
		IncidentType:     input.IncidentType,
		OccurredAt:       input.OccurredAt,
		VerificationCode: code,
		CodeExpiresAt:    time.Now().Add(s.cfg.CodeTTL),
		Status:           models.StatusDraft,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return nil, false, fmt.Errorf("service: could not create report: %w", err)
	}

	smsSent := true
	err = s.smsQueue.Publish(ctx, sms.Message{
		ReportID: report.ID,
		Phone:    report.ReporterPhone,
		Code:     code,
		QueuedAt: time.Now(),
	})
	if err != nil {
		// Черновик уже создан и код валиден - сообщаем клиенту, что SMS не ушла
		log.WithError(err).Error("Failed to queue verification sms")
		smsSent = false
	}

	log.WithField("report_id", report.ID).Info("Incident report created in draft status")
	return report, smsSent, nil
}

// VerifyReport проверяет код и переводит отчет draft -> submitted.
// Переход выполняется условным обновлением: при гонке двух корректных
// отправок успешной будет ровно одна
func (s *reportService) VerifyReport(ctx context.Context, id uuid.UUID, code, clientIP string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "VerifyReport",
		"report_id": id,
	})
	log.Info("Attempting to verify incident report")

	if err := s.checkBudget(ctx, bucketVerify, clientIP, s.cfg.VerifyLimit, s.cfg.VerifyWindow); err != nil {
		return err
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report for verification")
		if errors.Is(err, ErrReportNotFound) {
			return err
		}
		return fmt.Errorf("service: could not get report: %w", err)
	}

	// Повторная верификация - ошибка, а не no-op: иначе код можно было бы переиспользовать
	if report.Status == models.StatusSubmitted {
		return ErrAlreadySubmitted
	}

	if time.Now().After(report.CodeExpiresAt) {
		return ErrCodeExpired
	}

	// Сравнение строк, не чисел
	if report.VerificationCode != code {
		return ErrCodeMismatch
	}

	ok, err := s.reports.MarkSubmitted(ctx, id, time.Now())
	if err != nil {
		log.WithError(err).Error("Failed to mark report as submitted")
		return fmt.Errorf("service: could not submit report: %w", err)
	}
	if !ok {
		// Ноль затронутых строк: статус успел смениться конкурентным запросом
		return ErrAlreadySubmitted
	}

	log.Info("Incident report verified and submitted")
	return nil
}

// ResendCode выпускает новый код для существующего черновика под собственным бюджетом.
// Статус отчета не меняется; для закрытого или несуществующего отчета - отказ
func (s *reportService) ResendCode(ctx context.Context, id uuid.UUID, clientIP string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ResendCode",
		"report_id": id,
	})
	log.Info("Attempting to resend verification code")

	if err := s.checkBudget(ctx, bucketResend, clientIP, s.cfg.ResendLimit, s.cfg.ResendWindow); err != nil {
		return err
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report for resend")
		if errors.Is(err, ErrReportNotFound) {
			return err
		}
		return fmt.Errorf("service: could not get report: %w", err)
	}

	if report.Status == models.StatusSubmitted {
		return ErrAlreadySubmitted
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	expiresAt := time.Now().Add(s.cfg.CodeTTL)

	if err := s.reports.UpdateCode(ctx, id, code, expiresAt); err != nil {
		log.WithError(err).Error("Failed to update verification code")
		return fmt.Errorf("service: could not update code: %w", err)
	}

	err = s.smsQueue.Publish(ctx, sms.Message{
		ReportID: id,
		Phone:    report.ReporterPhone,
		Code:     code,
		QueuedAt: time.Now(),
	})
	if err != nil {
		// В отличие от первичной отправки здесь нет состояния, на которое можно опереться, - ошибка уходит вызывающему
		log.WithError(err).Error("Failed to queue resend sms")
		return fmt.Errorf("%w: %v", ErrSMSDispatch, err)
	}

	log.Info("Verification code reissued")
	return nil
}

// GetReport возвращает отчет по ID
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report in repository")
		if errors.Is(err, ErrReportNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	return report, nil
}

// ListReports возвращает список отчетов с пагинацией
func (s *reportService) ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      page,
		"page_size": pageSize,
	})

	reports, err := s.reports.ListReports(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Reports listed successfully")
	return reports, nil
}

// GetStats возвращает количество подтвержденных отчетов за настроенное окно
func (s *reportService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "GetStats",
	})

	count, err := s.reports.GetSubmittedStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get report stats from repository")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
