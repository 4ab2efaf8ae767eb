package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

type ExperienceRepository interface {
	Create(ctx context.Context, exp domain.Experience) error
	List(ctx context.Context) ([]domain.Experience, error)
	Update(ctx context.Context, exp domain.Experience) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type PgExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewPgExperienceRepository(pool *pgxpool.Pool) *PgExperienceRepository {
	return &PgExperienceRepository{pool: pool}
}

func (r *PgExperienceRepository) Create(ctx context.Context, exp domain.Experience) error {
	const query = `
		INSERT INTO experience (id, title, company, location, start_date, end_date, current, description, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		exp.ID,
		exp.Title,
		exp.Company,
		exp.Location,
		exp.StartDate,
		exp.EndDate,
		exp.Current,
		exp.Description,
		exp.Order,
	)
	return err
}

func (r *PgExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	const query = `
		SELECT id, title, company, location, start_date, end_date, current, description, sort_order
		FROM experience
		ORDER BY sort_order
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exps []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.StartDate, &e.EndDate, &e.Current, &e.Description, &e.Order); err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	return exps, rows.Err()
}

func (r *PgExperienceRepository) Update(ctx context.Context, exp domain.Experience) error {
	const query = `
		UPDATE experience
		SET title = $2, company = $3, location = $4, start_date = $5, end_date = $6,
		    current = $7, description = $8, sort_order = $9
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		exp.ID,
		exp.Title,
		exp.Company,
		exp.Location,
		exp.StartDate,
		exp.EndDate,
		exp.Current,
		exp.Description,
		exp.Order,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgExperienceRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM experience WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PgExperienceRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM experience`
	var n int
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}
