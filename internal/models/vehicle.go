package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle представляет транспортное средство с наклеенным QR-кодом
type Vehicle struct {
	ID          uuid.UUID `json:"id"`
	QRToken     string    `json:"qr_token"`
	DisplayName string    `json:"display_name"`
	OwnerPhone  string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
