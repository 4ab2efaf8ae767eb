package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

type TechnologyRepository interface {
	Create(ctx context.Context, tech domain.Technology) error
	List(ctx context.Context) ([]domain.Technology, error)
	Update(ctx context.Context, tech domain.Technology) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type PgTechnologyRepository struct {
	pool *pgxpool.Pool
}

func NewPgTechnologyRepository(pool *pgxpool.Pool) *PgTechnologyRepository {
	return &PgTechnologyRepository{pool: pool}
}

func (r *PgTechnologyRepository) Create(ctx context.Context, tech domain.Technology) error {
	const query = `INSERT INTO technologies (id, name, sort_order) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, tech.ID, tech.Name, tech.Order)
	return err
}

func (r *PgTechnologyRepository) List(ctx context.Context) ([]domain.Technology, error) {
	const query = `SELECT id, name, sort_order FROM technologies ORDER BY sort_order`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var techs []domain.Technology
	for rows.Next() {
		var t domain.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.Order); err != nil {
			return nil, err
		}
		techs = append(techs, t)
	}
	return techs, rows.Err()
}

func (r *PgTechnologyRepository) Update(ctx context.Context, tech domain.Technology) error {
	const query = `UPDATE technologies SET name = $2, sort_order = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, tech.ID, tech.Name, tech.Order)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgTechnologyRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM technologies WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PgTechnologyRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM technologies`
	var n int
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}
