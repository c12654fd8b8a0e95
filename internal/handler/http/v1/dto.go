package v1

import (
	"time"

	"github.com/google/uuid"
)

// SubmitReportRequest DTO для публичной отправки отчета об инциденте
// @Description DTO для публичной отправки отчета об инциденте
type SubmitReportRequest struct {
	QRToken       string    `json:"qr_token" validate:"required,min=8,max=128"`
	ReporterName  string    `json:"reporter_name" validate:"required,min=2,max=255"`
	ReporterPhone string    `json:"reporter_phone" validate:"required,e164"`
	ReporterEmail string    `json:"reporter_email,omitempty" validate:"omitempty,email"`
	Description   string    `json:"description" validate:"required,max=2000"`
	IncidentType  string    `json:"incident_type" validate:"required,oneof=damage theft accident vandalism other"`
	OccurredAt    time.Time `json:"occurred_at" validate:"required"`
	CaptchaToken  string    `json:"captcha_token" validate:"required"`
	// Honeypot-поле: люди его не заполняют, валидация намеренно отсутствует
	Website string `json:"website,omitempty"`
}

// VerifyReportRequest DTO для подтверждения отчета кодом из SMS
// @Description DTO для подтверждения отчета кодом из SMS
type VerifyReportRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// SubmitReportResponse DTO для ответа на отправку отчета
// @Description DTO для ответа на отправку отчета
type SubmitReportResponse struct {
	Report  *ReportResponse `json:"report"`
	SMSSent bool            `json:"sms_sent"`
}

// ReportResponse DTO для ответа с информацией об отчете
// @Description DTO для ответа с информацией об отчете
type ReportResponse struct {
	ID            uuid.UUID  `json:"id"`
	VehicleID     uuid.UUID  `json:"vehicle_id"`
	ReporterName  string     `json:"reporter_name"`
	ReporterPhone string     `json:"reporter_phone"`
	ReporterEmail string     `json:"reporter_email,omitempty"`
	Description   string     `json:"description"`
	IncidentType  string     `json:"incident_type"`
	OccurredAt    time.Time  `json:"occurred_at"`
	Status        string     `json:"status"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// VehicleResponse DTO для ответа на разрешение QR-токена
// @Description DTO для ответа на разрешение QR-токена
type VehicleResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	SubmittedCount int `json:"submitted_count"`
}
