package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

type SocialLinkRepository interface {
	Create(ctx context.Context, link domain.SocialLink) error
	List(ctx context.Context) ([]domain.SocialLink, error)
	ListVisible(ctx context.Context) ([]domain.SocialLink, error)
	Update(ctx context.Context, link domain.SocialLink) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type PgSocialLinkRepository struct {
	pool *pgxpool.Pool
}

func NewPgSocialLinkRepository(pool *pgxpool.Pool) *PgSocialLinkRepository {
	return &PgSocialLinkRepository{pool: pool}
}

func (r *PgSocialLinkRepository) Create(ctx context.Context, link domain.SocialLink) error {
	const query = `
		INSERT INTO social_links (id, platform, url, icon, sort_order, visible)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query, link.ID, link.Platform, link.URL, link.Icon, link.Order, link.Visible)
	return err
}

func (r *PgSocialLinkRepository) List(ctx context.Context) ([]domain.SocialLink, error) {
	const query = `
		SELECT id, platform, url, icon, sort_order, visible
		FROM social_links
		ORDER BY sort_order
	`
	return r.queryMany(ctx, query)
}

func (r *PgSocialLinkRepository) ListVisible(ctx context.Context) ([]domain.SocialLink, error) {
	const query = `
		SELECT id, platform, url, icon, sort_order, visible
		FROM social_links
		WHERE visible = TRUE
		ORDER BY sort_order
	`
	return r.queryMany(ctx, query)
}

func (r *PgSocialLinkRepository) Update(ctx context.Context, link domain.SocialLink) error {
	const query = `
		UPDATE social_links SET platform = $2, url = $3, icon = $4, sort_order = $5, visible = $6
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, link.ID, link.Platform, link.URL, link.Icon, link.Order, link.Visible)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgSocialLinkRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM social_links WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PgSocialLinkRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM social_links`
	var n int
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}

func (r *PgSocialLinkRepository) queryMany(ctx context.Context, query string) ([]domain.SocialLink, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.SocialLink
	for rows.Next() {
		var l domain.SocialLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.Order, &l.Visible); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
