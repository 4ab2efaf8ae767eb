package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate aplica el schema minimo necesario. Las sentencias son idempotentes
// y se ejecutan en orden en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS admin_users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			last_login TIMESTAMPTZ NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES admin_users(id),
			token TEXT NOT NULL UNIQUE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			tech TEXT[] NOT NULL DEFAULT '{}',
			image TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			repo TEXT NOT NULL DEFAULT '',
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_projects_featured ON projects(featured);`,
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_read ON messages(read);`,
		`CREATE TABLE IF NOT EXISTS hero_section (
			key TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			status_badge TEXT NOT NULL,
			status_visible BOOLEAN NOT NULL,
			headline TEXT NOT NULL,
			subheadline TEXT NOT NULL,
			cta_primary_text TEXT NOT NULL,
			cta_secondary_text TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS about_section (
			key TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS contact_section (
			key TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			email TEXT NOT NULL,
			location TEXT NOT NULL,
			response_time_text TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS site_settings (
			key TEXT PRIMARY KEY,
			site_name TEXT NOT NULL,
			site_title TEXT NOT NULL,
			site_description TEXT NOT NULL,
			site_keywords TEXT[] NOT NULL DEFAULT '{}',
			author_name TEXT NOT NULL,
			logo_text TEXT NOT NULL,
			footer_tagline TEXT NOT NULL,
			copyright_name TEXT NOT NULL,
			og_image TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS skills (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT NOT NULL,
			sort_order INT NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS technologies (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			sort_order INT NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS stats (
			id TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			label TEXT NOT NULL,
			sort_order INT NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS social_links (
			id TEXT PRIMARY KEY,
			platform TEXT NOT NULL,
			url TEXT NOT NULL,
			icon TEXT NOT NULL,
			sort_order INT NOT NULL DEFAULT 0,
			visible BOOLEAN NOT NULL DEFAULT TRUE
		);`,
		`CREATE TABLE IF NOT EXISTS experience (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			location TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL DEFAULT '',
			current BOOLEAN NOT NULL DEFAULT FALSE,
			description TEXT NOT NULL,
			sort_order INT NOT NULL DEFAULT 0
		);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
