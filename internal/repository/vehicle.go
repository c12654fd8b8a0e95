package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) service.VehicleRepository {
	return &VehicleRepository{
		db: db,
	}
}

// GetByQRToken возвращает транспортное средство по его QR-токену
func (r *VehicleRepository) GetByQRToken(ctx context.Context, qrToken string) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{}
	query := `
		SELECT
			id,
			qr_token,
			display_name,
			owner_phone,
			created_at
		FROM vehicles
		WHERE qr_token = $1;
	`
	err := r.db.QueryRow(ctx, query, qrToken).Scan(
		&vehicle.ID,
		&vehicle.QRToken,
		&vehicle.DisplayName,
		&vehicle.OwnerPhone,
		&vehicle.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("vehicle with qr token: %w", service.ErrVehicleNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle by qr token: %w", err)
	}
	return vehicle, nil
}
