package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// respondServiceError сопоставляет доменные ошибки с HTTP-статусами.
// Ошибки поиска отдаются одинаковым "invalid report reference", чтобы не
// раскрывать, какая именно часть ссылки не нашлась
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBotDetected):
		c.JSON(http.StatusForbidden, gin.H{"error": "submission rejected"})
	case errors.Is(err, service.ErrCaptchaFailed):
		c.JSON(http.StatusForbidden, gin.H{"error": "captcha verification failed"})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
	case errors.Is(err, service.ErrVehicleNotFound), errors.Is(err, service.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid report reference"})
	case errors.Is(err, service.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": "report already verified"})
	case errors.Is(err, service.ErrCodeExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "verification code expired"})
	case errors.Is(err, service.ErrCodeMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verification code"})
	case errors.Is(err, service.ErrSMSDispatch):
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send verification code"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Resolve a QR token
// @Description Resolve a vehicle QR token to a minimal public descriptor.
// @Tags Reports
// @Accept json
// @Produce json
// @Param qr_token path string true "Vehicle QR token"
// @Success 200 {object} VehicleResponse
// @Failure 404 {object} map[string]string "Invalid report reference"
// @Router /vehicles/{qr_token} [get]
func (h *Handler) getVehicle(c *gin.Context) {
	log := h.logger.WithField("method", "getVehicle")

	vehicle, err := h.reportService.LookupVehicle(c.Request.Context(), c.Param("qr_token"))
	if err != nil {
		log.WithError(err).Warn("Failed to resolve qr token")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVehicleResponse(vehicle))
}

// @Summary Submit an incident report
// @Description Submit a new incident report. Admission is gated by honeypot, CAPTCHA and per-IP rate limit; on success a draft report is created and a verification code is sent by SMS.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body SubmitReportRequest true "Incident report submission"
// @Success 201 {object} SubmitReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Rejected by admission gate"
// @Failure 404 {object} map[string]string "Invalid report reference"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, smsSent, err := h.reportService.SubmitReport(c.Request.Context(), DTOToSubmitInput(input, c.ClientIP()))
	if err != nil {
		log.WithError(err).Warn("Failed to submit report in service")
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SubmitReportResponse{
		Report:  ModelToReportResponse(report),
		SMSSent: smsSent,
	})
}

// @Summary Verify an incident report
// @Description Verify a draft report with the SMS code. The transition draft -> submitted happens at most once.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param verification body VerifyReportRequest true "Verification code"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request, expired or mismatched code"
// @Failure 404 {object} map[string]string "Invalid report reference"
// @Failure 409 {object} map[string]string "Report already verified"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/verify [post]
func (h *Handler) verifyReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "verifyReport").WithField("id", id)

	var input VerifyReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reportService.VerifyReport(c.Request.Context(), id, input.Code, c.ClientIP()); err != nil {
		log.WithError(err).Warn("Failed to verify report in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resend a verification code
// @Description Reissue the verification code for an existing draft report under its own rate budget.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Invalid report reference"
// @Failure 409 {object} map[string]string "Report already verified"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 502 {object} map[string]string "SMS dispatch failed"
// @Router /reports/{id}/resend [post]
func (h *Handler) resendCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "resendCode").WithField("id", id)

	if err := h.reportService.ResendCode(c.Request.Context(), id, c.ClientIP()); err != nil {
		log.WithError(err).Warn("Failed to resend code in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get a list of reports
// @Description Get a paginated list of incident reports. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	reports, err := h.reportService.ListReports(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Description Get a single incident report by its ID. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get report statistics
// @Description Get the count of reports submitted within the configured trailing window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.reportService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{SubmittedCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
