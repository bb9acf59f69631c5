package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// GarbageReportRepository encapsulates garbage-report persistence.
type GarbageReportRepository interface {
	Create(ctx context.Context, report *domain.GarbageReport) error
	ListByUser(ctx context.Context, userID string) ([]domain.GarbageReport, error)
}

type garbageReportRepository struct {
	pool *pgxpool.Pool
}

// NewGarbageReportRepository instantiates repository.
func NewGarbageReportRepository(pool *pgxpool.Pool) GarbageReportRepository {
	return &garbageReportRepository{pool: pool}
}

func (r *garbageReportRepository) Create(ctx context.Context, report *domain.GarbageReport) error {
	const query = `
        INSERT INTO garbage_reports (user_id, location, locality, mobile_num, additional_details, image_path)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		report.UserID,
		report.Location,
		report.Locality,
		report.MobileNum,
		report.AdditionalDetails,
		report.ImagePath,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return apperrors.NewPersistenceFailure(err)
	}
	return nil
}

func (r *garbageReportRepository) ListByUser(ctx context.Context, userID string) ([]domain.GarbageReport, error) {
	const query = `
        SELECT id, user_id, location, locality, mobile_num, additional_details, image_path, created_at
        FROM garbage_reports WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}
	defer rows.Close()

	reports := make([]domain.GarbageReport, 0)
	for rows.Next() {
		var g domain.GarbageReport
		if err := rows.Scan(
			&g.ID,
			&g.UserID,
			&g.Location,
			&g.Locality,
			&g.MobileNum,
			&g.AdditionalDetails,
			&g.ImagePath,
			&g.CreatedAt,
		); err != nil {
			return nil, apperrors.NewPersistenceFailure(err)
		}
		reports = append(reports, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}
	return reports, nil
}
