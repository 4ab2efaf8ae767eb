package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// AuthService coordina el ciclo de vida de cuentas de operador y sesiones:
// bootstrap unico, login con politica de sesion unica, validacion perezosa
// de expiracion, logout idempotente y cambio de password.
type AuthService struct {
	logger   *zap.Logger
	users    repository.AdminUserRepository
	sessions repository.SessionRepository
	cache    SessionCache
}

var (
	ErrAlreadyInitialized = errors.New("admin already initialized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordRequired   = errors.New("password required")
)

const (
	sessionTTL         = 7 * 24 * time.Hour
	sessionTokenLength = 64
	tokenAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

func NewAuthService(logger *zap.Logger, users repository.AdminUserRepository, sessions repository.SessionRepository, cache SessionCache) *AuthService {
	if cache == nil {
		cache = NewMemorySessionCache()
	}
	return &AuthService{
		logger:   logger,
		users:    users,
		sessions: sessions,
		cache:    cache,
	}
}

// CreateInitialAdmin crea la primera cuenta de operador. Es una operacion de
// un solo uso: falla si ya existe alguna cuenta.
func (s *AuthService) CreateInitialAdmin(ctx context.Context, emailAddr, password, name string) (domain.AccountView, error) {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return domain.AccountView{}, ErrInvalidEmail
	}
	password = strings.TrimSpace(password)
	if password == "" {
		return domain.AccountView{}, ErrPasswordRequired
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return domain.AccountView{}, err
	}
	if count > 0 {
		return domain.AccountView{}, ErrAlreadyInitialized
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AccountView{}, err
	}

	user := domain.AdminUser{
		ID:           uuid.NewString(),
		Email:        emailAddr,
		PasswordHash: string(hashBytes),
		Name:         strings.TrimSpace(name),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.AccountView{}, err
	}
	return user.View(), nil
}

// Login verifica credenciales y emite un nuevo token de sesion. Toda sesion
// previa del usuario queda eliminada (politica de sesion unica activa).
// "Cuenta inexistente" y "password incorrecto" devuelven el mismo error.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (string, domain.AccountView, error) {
	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return "", domain.AccountView{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.AccountView{}, ErrInvalidCredentials
		}
		return "", domain.AccountView{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.AccountView{}, ErrInvalidCredentials
	}

	token, err := generateSessionToken()
	if err != nil {
		return "", domain.AccountView{}, err
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}
	replaced, err := s.sessions.Replace(ctx, session)
	if err != nil {
		return "", domain.AccountView{}, err
	}
	for _, old := range replaced {
		if err := s.cache.Drop(old); err != nil && s.logger != nil {
			s.logger.Warn("drop superseded session from cache failed", zap.Error(err))
		}
	}
	if err := s.cache.Put(token, user.ID, sessionTTL); err != nil && s.logger != nil {
		s.logger.Warn("cache session failed", zap.Error(err))
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return "", domain.AccountView{}, err
	}
	user.LastLogin = &now
	return token, user.View(), nil
}

// ValidateSession resuelve un token a su cuenta. Token vacio, desconocido o
// vencido devuelve nil sin error; una fila vencida se ignora pero no se borra.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.AccountView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	userID := ""
	if id, ok, err := s.cache.Get(token); err == nil && ok {
		userID = id
	}
	if userID == "" {
		session, err := s.sessions.GetByToken(ctx, token)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, err
		}
		now := time.Now().UTC()
		if session.Expired(now) {
			return nil, nil
		}
		userID = session.UserID
		if err := s.cache.Put(token, userID, session.ExpiresAt.Sub(now)); err != nil && s.logger != nil {
			s.logger.Warn("cache session failed", zap.Error(err))
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	view := user.View()
	return &view, nil
}

// Logout elimina la sesion asociada al token. Es idempotente: un token
// desconocido o ya cerrado no es un error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return err
	}
	return s.cache.Drop(token)
}

// ChangePassword reemplaza el digest del usuario dueño de la sesion. Las
// sesiones existentes no se revocan.
func (s *AuthService) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	newPassword = strings.TrimSpace(newPassword)
	if newPassword == "" {
		return ErrPasswordRequired
	}

	session, err := s.liveSession(ctx, token)
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInvalidSession
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(currentPassword))); err != nil {
		return ErrIncorrectPassword
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(ctx, user.ID, string(hashBytes))
}

// ListAdminAccounts devuelve todas las cuentas (sin digest) solo si el token
// pertenece a una sesion viva de un admin; en cualquier otro caso la lista es
// vacia, nunca un error.
func (s *AuthService) ListAdminAccounts(ctx context.Context, token string) ([]domain.AccountView, error) {
	session, err := s.liveSession(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			return []domain.AccountView{}, nil
		}
		return nil, err
	}
	caller, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AccountView{}, nil
		}
		return nil, err
	}
	if caller.Role != domain.RoleAdmin {
		return []domain.AccountView{}, nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]domain.AccountView, 0, len(users))
	for _, u := range users {
		views = append(views, u.View())
	}
	return views, nil
}

// AdminExists informa si el bootstrap ya ocurrio y cuantas cuentas hay.
func (s *AuthService) AdminExists(ctx context.Context) (bool, int, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return false, 0, err
	}
	return count > 0, count, nil
}

// SweepExpiredSessions borra filas de sesion vencidas. Solo higiene de
// almacenamiento: la validacion ya las trata como invalidas.
func (s *AuthService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, time.Now().UTC())
}

func (s *AuthService) liveSession(ctx context.Context, token string) (domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Session{}, ErrInvalidSession
	}
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, ErrInvalidSession
		}
		return domain.Session{}, err
	}
	if session.Expired(time.Now().UTC()) {
		return domain.Session{}, ErrInvalidSession
	}
	return session, nil
}

func generateSessionToken() (string, error) {
	alphabetLen := big.NewInt(int64(len(tokenAlphabet)))
	var b strings.Builder
	b.Grow(sessionTokenLength)
	for i := 0; i < sessionTokenLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		b.WriteByte(tokenAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
