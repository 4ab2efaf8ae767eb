package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

type SkillRepository interface {
	Create(ctx context.Context, skill domain.Skill) error
	List(ctx context.Context) ([]domain.Skill, error)
	Update(ctx context.Context, skill domain.Skill) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type PgSkillRepository struct {
	pool *pgxpool.Pool
}

func NewPgSkillRepository(pool *pgxpool.Pool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

func (r *PgSkillRepository) Create(ctx context.Context, skill domain.Skill) error {
	const query = `
		INSERT INTO skills (id, title, description, icon, sort_order)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query, skill.ID, skill.Title, skill.Description, skill.Icon, skill.Order)
	return err
}

func (r *PgSkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	const query = `
		SELECT id, title, description, icon, sort_order
		FROM skills
		ORDER BY sort_order
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Order); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *PgSkillRepository) Update(ctx context.Context, skill domain.Skill) error {
	const query = `
		UPDATE skills SET title = $2, description = $3, icon = $4, sort_order = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, skill.ID, skill.Title, skill.Description, skill.Icon, skill.Order)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgSkillRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM skills WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PgSkillRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM skills`
	var n int
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}
