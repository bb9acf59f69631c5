package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// ScheduleRepository encapsulates collection-schedule persistence.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	List(ctx context.Context, area string) ([]domain.Schedule, error)
}

type scheduleRepository struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository instantiates repository.
func NewScheduleRepository(pool *pgxpool.Pool) ScheduleRepository {
	return &scheduleRepository{pool: pool}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	const query = `
        INSERT INTO schedules (employee_name, area, day, date, time)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		schedule.EmployeeName,
		schedule.Area,
		schedule.Day,
		schedule.Date,
		schedule.Time,
	).Scan(&schedule.ID, &schedule.CreatedAt)
	if err != nil {
		return apperrors.NewPersistenceFailure(err)
	}
	return nil
}

// List returns schedules, optionally filtered by a case-insensitive area
// substring match.
func (r *scheduleRepository) List(ctx context.Context, area string) ([]domain.Schedule, error) {
	query := `
        SELECT id, employee_name, area, day, date, time, created_at
        FROM schedules`
	args := []any{}
	if area != "" {
		query += ` WHERE area ILIKE '%' || $1 || '%'`
		args = append(args, area)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}
	defer rows.Close()

	schedules := make([]domain.Schedule, 0)
	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(
			&s.ID,
			&s.EmployeeName,
			&s.Area,
			&s.Day,
			&s.Date,
			&s.Time,
			&s.CreatedAt,
		); err != nil {
			return nil, apperrors.NewPersistenceFailure(err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}
	return schedules, nil
}
