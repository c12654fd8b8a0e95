package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/handler/http/v1/mocks"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockReportService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockReportService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validSubmitRequest() SubmitReportRequest {
	return SubmitReportRequest{
		QRToken:       "qr-token-12345678",
		ReporterName:  "Test Reporter",
		ReporterPhone: "+79001234567",
		Description:   "Broken mirror",
		IncidentType:  "damage",
		OccurredAt:    time.Now().Add(-time.Hour).UTC(),
		CaptchaToken:  "captcha-token",
	}
}

func TestSubmitReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := validSubmitRequest()
	expectedReport := &models.Report{
		ID:            reportID,
		VehicleID:     uuid.New(),
		ReporterName:  reqBody.ReporterName,
		ReporterPhone: reqBody.ReporterPhone,
		Description:   reqBody.Description,
		IncidentType:  reqBody.IncidentType,
		Status:        models.StatusDraft,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.SubmitReportInput) (*models.Report, bool, error) {
			assert.Equal(t, reqBody.QRToken, input.QRToken)
			assert.NotEmpty(t, input.ClientIP)
			return expectedReport, true, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.SMSSent)
	assert.Equal(t, reportID, resp.Report.ID)
	assert.Equal(t, "draft", resp.Report.Status)
	// Код подтверждения не должен просачиваться в ответ
	assert.NotContains(t, w.Body.String(), "verification_code")
}

func TestSubmitReport_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{"qr_token": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSubmitReport_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validSubmitRequest()
	reqBody.ReporterName = "" // Отсутствует ReporterName

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ReporterName' failed on the 'required' tag")
}

func TestSubmitReport_InvalidIncidentType(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validSubmitRequest()
	reqBody.IncidentType = "explosion"

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'IncidentType' failed on the 'oneof' tag")
}

func TestSubmitReport_BotDetected(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validSubmitRequest()
	reqBody.Website = "http://spam.example"

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, false, service.ErrBotDetected).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "submission rejected")
}

func TestSubmitReport_RateLimited(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validSubmitRequest()

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, false, fmt.Errorf("%w: retry after 1h", service.ErrRateLimited)).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too many requests")
}

func TestSubmitReport_UnknownVehicle(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validSubmitRequest()

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, false, service.ErrVehicleNotFound).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	// Обобщенный ответ, не раскрывающий, что именно не нашлось
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report reference")
}

func TestSubmitReport_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validSubmitRequest()
	serviceError := errors.New("failed to create report in service")

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, false, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestVerifyReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		VerifyReport(gomock.Any(), reportID, "482913", gomock.Any()).
		Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(VerifyReportRequest{Code: "482913"})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/verify", reportID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyReport_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().VerifyReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(VerifyReportRequest{Code: "482913"})
	w := makeRequest(router, "POST", "/api/v1/reports/invalid-uuid/verify", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report ID")
}

func TestVerifyReport_ShortCode(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().VerifyReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(VerifyReportRequest{Code: "1234"})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/verify", reportID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Code' failed on the 'len' tag")
}

func TestVerifyReport_CodeMismatch(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		VerifyReport(gomock.Any(), reportID, "000000", gomock.Any()).
		Return(service.ErrCodeMismatch).Times(1)

	bodyBytes, _ := json.Marshal(VerifyReportRequest{Code: "000000"})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/verify", reportID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid verification code")
}

func TestVerifyReport_Expired(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		VerifyReport(gomock.Any(), reportID, "482913", gomock.Any()).
		Return(service.ErrCodeExpired).Times(1)

	bodyBytes, _ := json.Marshal(VerifyReportRequest{Code: "482913"})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/verify", reportID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "verification code expired")
}

func TestVerifyReport_AlreadySubmitted(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		VerifyReport(gomock.Any(), reportID, "482913", gomock.Any()).
		Return(service.ErrAlreadySubmitted).Times(1)

	bodyBytes, _ := json.Marshal(VerifyReportRequest{Code: "482913"})
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/verify", reportID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "report already verified")
}

func TestResendCode_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		ResendCode(gomock.Any(), reportID, gomock.Any()).
		Return(nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/resend", reportID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResendCode_DispatchFailure(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		ResendCode(gomock.Any(), reportID, gomock.Any()).
		Return(fmt.Errorf("%w: redis down", service.ErrSMSDispatch)).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/resend", reportID.String()), nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "failed to send verification code")
}

func TestGetVehicle_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	vehicleID := uuid.New()

	mockService.EXPECT().
		LookupVehicle(gomock.Any(), "qr-token-12345678").
		Return(&models.Vehicle{ID: vehicleID, DisplayName: "Серый седан", OwnerPhone: "+79001112233"}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/vehicles/qr-token-12345678", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp VehicleResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, vehicleID, resp.ID)
	// Телефон владельца наружу не отдается
	assert.NotContains(t, w.Body.String(), "+79001112233")
}

func TestGetVehicle_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		LookupVehicle(gomock.Any(), "missing").
		Return(nil, service.ErrVehicleNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/vehicles/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report reference")
}

func TestListReports_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedReports := []*models.Report{
		{ID: uuid.New(), ReporterName: "Reporter 1", Status: models.StatusDraft},
		{ID: uuid.New(), ReporterName: "Reporter 2", Status: models.StatusSubmitted},
	}

	mockService.EXPECT().ListReports(gomock.Any(), 1, 10).Return(expectedReports, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports?page=1&pageSize=10", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedReports[0].ReporterName, resp[0].ReporterName)
}

func TestListReports_MissingAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListReports(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports?page=1&pageSize=10", nil) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestGetReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	expectedReport := &models.Report{
		ID:           reportID,
		ReporterName: "Retrieved Reporter",
		Status:       models.StatusSubmitted,
	}

	mockService.EXPECT().GetReport(gomock.Any(), reportID).Return(expectedReport, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s", reportID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reportID, resp.ID)
	assert.Equal(t, expectedReport.ReporterName, resp.ReporterName)
}

func TestGetReport_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().GetReport(gomock.Any(), reportID).Return(nil, service.ErrReportNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s", reportID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report reference")
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedCount := 123

	mockService.EXPECT().GetStats(gomock.Any()).Return(expectedCount, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedCount, resp.SubmittedCount)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to get stats")

	mockService.EXPECT().GetStats(gomock.Any()).Return(0, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
