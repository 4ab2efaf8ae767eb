package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

// sectionKey es la clave fija de cada fila singleton de seccion.
const sectionKey = "main"

// SectionRepository persiste las secciones singleton del sitio.
type SectionRepository interface {
	GetHero(ctx context.Context) (domain.HeroSection, error)
	UpsertHero(ctx context.Context, hero domain.HeroSection) error
	GetAbout(ctx context.Context) (domain.AboutSection, error)
	UpsertAbout(ctx context.Context, about domain.AboutSection) error
	GetContact(ctx context.Context) (domain.ContactSection, error)
	UpsertContact(ctx context.Context, contact domain.ContactSection) error
	GetSettings(ctx context.Context) (domain.SiteSettings, error)
	UpsertSettings(ctx context.Context, settings domain.SiteSettings) error
}

type PgSectionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSectionRepository(pool *pgxpool.Pool) *PgSectionRepository {
	return &PgSectionRepository{pool: pool}
}

func (r *PgSectionRepository) GetHero(ctx context.Context) (domain.HeroSection, error) {
	const query = `
		SELECT name, status_badge, status_visible, headline, subheadline, cta_primary_text, cta_secondary_text
		FROM hero_section
		WHERE key = $1
	`
	var h domain.HeroSection
	err := r.pool.QueryRow(ctx, query, sectionKey).Scan(
		&h.Name,
		&h.StatusBadge,
		&h.StatusVisible,
		&h.Headline,
		&h.Subheadline,
		&h.CTAPrimaryText,
		&h.CTASecondaryText,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.HeroSection{}, err
	}
	return h, err
}

func (r *PgSectionRepository) UpsertHero(ctx context.Context, hero domain.HeroSection) error {
	const query = `
		INSERT INTO hero_section (key, name, status_badge, status_visible, headline, subheadline, cta_primary_text, cta_secondary_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (key) DO UPDATE SET
			name = EXCLUDED.name,
			status_badge = EXCLUDED.status_badge,
			status_visible = EXCLUDED.status_visible,
			headline = EXCLUDED.headline,
			subheadline = EXCLUDED.subheadline,
			cta_primary_text = EXCLUDED.cta_primary_text,
			cta_secondary_text = EXCLUDED.cta_secondary_text
	`
	_, err := r.pool.Exec(ctx, query,
		sectionKey,
		hero.Name,
		hero.StatusBadge,
		hero.StatusVisible,
		hero.Headline,
		hero.Subheadline,
		hero.CTAPrimaryText,
		hero.CTASecondaryText,
	)
	return err
}

func (r *PgSectionRepository) GetAbout(ctx context.Context) (domain.AboutSection, error) {
	const query = `SELECT title, description FROM about_section WHERE key = $1`
	var a domain.AboutSection
	err := r.pool.QueryRow(ctx, query, sectionKey).Scan(&a.Title, &a.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AboutSection{}, err
	}
	return a, err
}

func (r *PgSectionRepository) UpsertAbout(ctx context.Context, about domain.AboutSection) error {
	const query = `
		INSERT INTO about_section (key, title, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description
	`
	_, err := r.pool.Exec(ctx, query, sectionKey, about.Title, about.Description)
	return err
}

func (r *PgSectionRepository) GetContact(ctx context.Context) (domain.ContactSection, error) {
	const query = `
		SELECT title, description, email, location, response_time_text
		FROM contact_section
		WHERE key = $1
	`
	var c domain.ContactSection
	err := r.pool.QueryRow(ctx, query, sectionKey).Scan(
		&c.Title,
		&c.Description,
		&c.Email,
		&c.Location,
		&c.ResponseTimeText,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ContactSection{}, err
	}
	return c, err
}

func (r *PgSectionRepository) UpsertContact(ctx context.Context, contact domain.ContactSection) error {
	const query = `
		INSERT INTO contact_section (key, title, description, email, location, response_time_text)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			email = EXCLUDED.email,
			location = EXCLUDED.location,
			response_time_text = EXCLUDED.response_time_text
	`
	_, err := r.pool.Exec(ctx, query,
		sectionKey,
		contact.Title,
		contact.Description,
		contact.Email,
		contact.Location,
		contact.ResponseTimeText,
	)
	return err
}

func (r *PgSectionRepository) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	const query = `
		SELECT site_name, site_title, site_description, site_keywords, author_name, logo_text, footer_tagline, copyright_name, og_image
		FROM site_settings
		WHERE key = $1
	`
	var s domain.SiteSettings
	err := r.pool.QueryRow(ctx, query, sectionKey).Scan(
		&s.SiteName,
		&s.SiteTitle,
		&s.SiteDescription,
		&s.SiteKeywords,
		&s.AuthorName,
		&s.LogoText,
		&s.FooterTagline,
		&s.CopyrightName,
		&s.OGImage,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SiteSettings{}, err
	}
	return s, err
}

func (r *PgSectionRepository) UpsertSettings(ctx context.Context, settings domain.SiteSettings) error {
	const query = `
		INSERT INTO site_settings (key, site_name, site_title, site_description, site_keywords, author_name, logo_text, footer_tagline, copyright_name, og_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (key) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			site_title = EXCLUDED.site_title,
			site_description = EXCLUDED.site_description,
			site_keywords = EXCLUDED.site_keywords,
			author_name = EXCLUDED.author_name,
			logo_text = EXCLUDED.logo_text,
			footer_tagline = EXCLUDED.footer_tagline,
			copyright_name = EXCLUDED.copyright_name,
			og_image = EXCLUDED.og_image
	`
	_, err := r.pool.Exec(ctx, query,
		sectionKey,
		settings.SiteName,
		settings.SiteTitle,
		settings.SiteDescription,
		settings.SiteKeywords,
		settings.AuthorName,
		settings.LogoText,
		settings.FooterTagline,
		settings.CopyrightName,
		settings.OGImage,
	)
	return err
}
