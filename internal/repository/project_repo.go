package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project domain.Project) error
	GetByID(ctx context.Context, id string) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListFeatured(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, project domain.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type PgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

func (r *PgProjectRepository) Create(ctx context.Context, project domain.Project) error {
	const query = `
		INSERT INTO projects (id, title, description, tech, image, url, repo, featured, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.Tech,
		project.Image,
		project.URL,
		project.Repo,
		project.Featured,
		project.Order,
		project.CreatedAt,
	)
	return err
}

func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (domain.Project, error) {
	const query = `
		SELECT id, title, description, tech, image, url, repo, featured, sort_order, created_at
		FROM projects
		WHERE id = $1
	`
	var p domain.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Tech,
		&p.Image,
		&p.URL,
		&p.Repo,
		&p.Featured,
		&p.Order,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, err
	}
	return p, err
}

func (r *PgProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const query = `
		SELECT id, title, description, tech, image, url, repo, featured, sort_order, created_at
		FROM projects
		ORDER BY sort_order, created_at
	`
	return r.queryMany(ctx, query)
}

func (r *PgProjectRepository) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	const query = `
		SELECT id, title, description, tech, image, url, repo, featured, sort_order, created_at
		FROM projects
		WHERE featured = TRUE
		ORDER BY sort_order, created_at
	`
	return r.queryMany(ctx, query)
}

func (r *PgProjectRepository) Update(ctx context.Context, project domain.Project) error {
	const query = `
		UPDATE projects
		SET title = $2, description = $3, tech = $4, image = $5, url = $6,
		    repo = $7, featured = $8, sort_order = $9
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.Tech,
		project.Image,
		project.URL,
		project.Repo,
		project.Featured,
		project.Order,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM projects WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PgProjectRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM projects`
	var n int
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}

func (r *PgProjectRepository) queryMany(ctx context.Context, query string) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Tech, &p.Image, &p.URL, &p.Repo, &p.Featured, &p.Order, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
