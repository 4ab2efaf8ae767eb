package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

// AdminUserRepository define el contrato de persistencia para operadores.
type AdminUserRepository interface {
	Create(ctx context.Context, user domain.AdminUser) error
	GetByID(ctx context.Context, id string) (domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (domain.AdminUser, error)
	List(ctx context.Context) ([]domain.AdminUser, error)
	Count(ctx context.Context) (int, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}

// PgAdminUserRepository implementa AdminUserRepository usando pgxpool.
type PgAdminUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgAdminUserRepository(pool *pgxpool.Pool) *PgAdminUserRepository {
	return &PgAdminUserRepository{pool: pool}
}

func (r *PgAdminUserRepository) Create(ctx context.Context, user domain.AdminUser) error {
	const query = `
		INSERT INTO admin_users (id, email, password_hash, name, role, created_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.CreatedAt,
		user.LastLogin,
	)
	return err
}

func (r *PgAdminUserRepository) GetByID(ctx context.Context, id string) (domain.AdminUser, error) {
	const query = `
		SELECT id, email, password_hash, name, role, created_at, last_login
		FROM admin_users
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *PgAdminUserRepository) GetByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	const query = `
		SELECT id, email, password_hash, name, role, created_at, last_login
		FROM admin_users
		WHERE email = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *PgAdminUserRepository) List(ctx context.Context) ([]domain.AdminUser, error) {
	const query = `
		SELECT id, email, password_hash, name, role, created_at, last_login
		FROM admin_users
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.AdminUser
	for rows.Next() {
		var u domain.AdminUser
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt, &u.LastLogin); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgAdminUserRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM admin_users`
	var n int
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}

func (r *PgAdminUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE admin_users SET last_login = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, at)
	return err
}

func (r *PgAdminUserRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	const query = `UPDATE admin_users SET password_hash = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, hash)
	return err
}

func (r *PgAdminUserRepository) scanOne(row pgx.Row) (domain.AdminUser, error) {
	var u domain.AdminUser
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Role,
		&u.CreatedAt,
		&u.LastLogin,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AdminUser{}, err
	}
	return u, err
}
