package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// Create создает новую запись отчета в бд
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (
			vehicle_id, qr_token, reporter_name, reporter_phone, reporter_email,
			description, incident_type, occurred_at, verification_code, code_expires_at, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.VehicleID,
		report.QRToken,
		report.ReporterName,
		report.ReporterPhone,
		report.ReporterEmail,
		report.Description,
		report.IncidentType,
		report.OccurredAt,
		report.VerificationCode,
		report.CodeExpiresAt,
		report.Status,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID возвращает отчет по его UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report := &models.Report{}
	query := `
		SELECT
			id,
			vehicle_id,
			qr_token,
			reporter_name,
			reporter_phone,
			reporter_email,
			description,
			incident_type,
			occurred_at,
			verification_code,
			code_expires_at,
			status,
			verified_at,
			created_at,
			updated_at
		FROM reports
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.VehicleID,
		&report.QRToken,
		&report.ReporterName,
		&report.ReporterPhone,
		&report.ReporterEmail,
		&report.Description,
		&report.IncidentType,
		&report.OccurredAt,
		&report.VerificationCode,
		&report.CodeExpiresAt,
		&report.Status,
		&report.VerifiedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s: %w", id, service.ErrReportNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// MarkSubmitted переводит отчет draft -> submitted условным обновлением.
// Возвращает false, если ни одна строка не затронута - отчет уже подтвержден
// конкурентным запросом или не существует
func (r *ReportRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (bool, error) {
	query := `
		UPDATE reports SET
			status = 'submitted',
			verified_at = $2,
			updated_at = NOW()
		WHERE id = $1 AND status = 'draft';
	`
	cmdTag, err := r.db.Exec(ctx, query, id, verifiedAt)
	if err != nil {
		return false, fmt.Errorf("failed to mark report as submitted: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// UpdateCode заменяет код подтверждения и срок его действия, не трогая статус
func (r *ReportRepository) UpdateCode(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error {
	query := `
		UPDATE reports SET
			verification_code = $2,
			code_expires_at = $3,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, code, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to update verification code: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s: %w", id, service.ErrReportNotFound)
	}
	return nil
}

// ListReports возвращает список отчетов с пагинацией
func (r *ReportRepository) ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			vehicle_id,
			qr_token,
			reporter_name,
			reporter_phone,
			reporter_email,
			description,
			incident_type,
			occurred_at,
			verification_code,
			code_expires_at,
			status,
			verified_at,
			created_at,
			updated_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		err := rows.Scan(
			&report.ID,
			&report.VehicleID,
			&report.QRToken,
			&report.ReporterName,
			&report.ReporterPhone,
			&report.ReporterEmail,
			&report.Description,
			&report.IncidentType,
			&report.OccurredAt,
			&report.VerificationCode,
			&report.CodeExpiresAt,
			&report.Status,
			&report.VerifiedAt,
			&report.CreatedAt,
			&report.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// GetSubmittedStats возвращает количество подтвержденных отчетов за последние minutes минут
func (r *ReportRepository) GetSubmittedStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reports
		WHERE status = 'submitted'
		  AND verified_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get submitted report stats: %w", err)
	}
	return count, nil
}
