package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы жизненного цикла отчета. Переход только вперед: draft -> submitted.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
)

// Допустимые типы инцидентов
const (
	IncidentTypeDamage    = "damage"
	IncidentTypeTheft     = "theft"
	IncidentTypeAccident  = "accident"
	IncidentTypeVandalism = "vandalism"
	IncidentTypeOther     = "other"
)

// Report представляет отчет об инциденте, привязанный к транспортному средству по QR-токену
type Report struct {
	ID               uuid.UUID  `json:"id"`
	VehicleID        uuid.UUID  `json:"vehicle_id"`
	QRToken          string     `json:"qr_token"`
	ReporterName     string     `json:"reporter_name"`
	ReporterPhone    string     `json:"reporter_phone"`
	ReporterEmail    string     `json:"reporter_email,omitempty"`
	Description      string     `json:"description"`
	IncidentType     string     `json:"incident_type"`
	OccurredAt       time.Time  `json:"occurred_at"`
	VerificationCode string     `json:"-"`
	CodeExpiresAt    time.Time  `json:"-"`
	Status           string     `json:"status"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
