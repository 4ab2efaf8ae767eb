package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

type StatRepository interface {
	Create(ctx context.Context, stat domain.Stat) error
	List(ctx context.Context) ([]domain.Stat, error)
	Update(ctx context.Context, stat domain.Stat) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type PgStatRepository struct {
	pool *pgxpool.Pool
}

func NewPgStatRepository(pool *pgxpool.Pool) *PgStatRepository {
	return &PgStatRepository{pool: pool}
}

func (r *PgStatRepository) Create(ctx context.Context, stat domain.Stat) error {
	const query = `INSERT INTO stats (id, value, label, sort_order) VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, stat.ID, stat.Value, stat.Label, stat.Order)
	return err
}

func (r *PgStatRepository) List(ctx context.Context) ([]domain.Stat, error) {
	const query = `SELECT id, value, label, sort_order FROM stats ORDER BY sort_order`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.Stat
	for rows.Next() {
		var s domain.Stat
		if err := rows.Scan(&s.ID, &s.Value, &s.Label, &s.Order); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *PgStatRepository) Update(ctx context.Context, stat domain.Stat) error {
	const query = `UPDATE stats SET value = $2, label = $3, sort_order = $4 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, stat.ID, stat.Value, stat.Label, stat.Order)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgStatRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM stats WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PgStatRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM stats`
	var n int
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}
