package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// ConcernRepository encapsulates concern persistence.
type ConcernRepository interface {
	Create(ctx context.Context, concern *domain.Concern) error
	List(ctx context.Context) ([]domain.Concern, error)
	GetByID(ctx context.Context, id string) (*domain.Concern, error)
	MarkResolved(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type concernRepository struct {
	pool *pgxpool.Pool
}

// NewConcernRepository instantiates repository.
func NewConcernRepository(pool *pgxpool.Pool) ConcernRepository {
	return &concernRepository{pool: pool}
}

func (r *concernRepository) Create(ctx context.Context, concern *domain.Concern) error {
	const query = `
        INSERT INTO concerns (user_id, name, house_number, locality, mobile_num, issue_type, additional_details, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		concern.UserID,
		concern.Name,
		concern.HouseNumber,
		concern.Locality,
		concern.MobileNum,
		concern.IssueType,
		concern.AdditionalDetails,
		concern.Status,
	).Scan(&concern.ID, &concern.CreatedAt, &concern.UpdatedAt)
	if err != nil {
		return apperrors.NewPersistenceFailure(err)
	}
	return nil
}

func (r *concernRepository) List(ctx context.Context) ([]domain.Concern, error) {
	const query = `
        SELECT id, user_id, name, house_number, locality, mobile_num, issue_type, additional_details, status, created_at, updated_at
        FROM concerns ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}
	defer rows.Close()

	concerns := make([]domain.Concern, 0)
	for rows.Next() {
		var c domain.Concern
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Name,
			&c.HouseNumber,
			&c.Locality,
			&c.MobileNum,
			&c.IssueType,
			&c.AdditionalDetails,
			&c.Status,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewPersistenceFailure(err)
		}
		concerns = append(concerns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}
	return concerns, nil
}

func (r *concernRepository) GetByID(ctx context.Context, id string) (*domain.Concern, error) {
	const query = `
        SELECT id, user_id, name, house_number, locality, mobile_num, issue_type, additional_details, status, created_at, updated_at
        FROM concerns WHERE id=$1`

	var c domain.Concern
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.HouseNumber,
		&c.Locality,
		&c.MobileNum,
		&c.IssueType,
		&c.AdditionalDetails,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("concern")
		}
		return nil, apperrors.NewPersistenceFailure(err)
	}
	return &c, nil
}

func (r *concernRepository) MarkResolved(ctx context.Context, id string) error {
	const query = `
        UPDATE concerns SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, domain.ConcernStatusResolved, id)
	if err != nil {
		return apperrors.NewPersistenceFailure(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("concern")
	}
	return nil
}

func (r *concernRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM concerns WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return apperrors.NewPersistenceFailure(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("concern")
	}
	return nil
}
