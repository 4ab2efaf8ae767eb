package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
)

type stubAdminUserRepo struct {
	usersByID    map[string]domain.AdminUser
	usersByEmail map[string]string
}

func newStubAdminUserRepo() *stubAdminUserRepo {
	return &stubAdminUserRepo{
		usersByID:    make(map[string]domain.AdminUser),
		usersByEmail: make(map[string]string),
	}
}

func (s *stubAdminUserRepo) Create(_ context.Context, user domain.AdminUser) error {
	s.usersByID[user.ID] = user
	s.usersByEmail[user.Email] = user.ID
	return nil
}

func (s *stubAdminUserRepo) GetByID(_ context.Context, id string) (domain.AdminUser, error) {
	user, ok := s.usersByID[id]
	if !ok {
		return domain.AdminUser{}, pgx.ErrNoRows
	}
	return user, nil
}

func (s *stubAdminUserRepo) GetByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	id, ok := s.usersByEmail[email]
	if !ok {
		return domain.AdminUser{}, pgx.ErrNoRows
	}
	return s.GetByID(ctx, id)
}

func (s *stubAdminUserRepo) List(_ context.Context) ([]domain.AdminUser, error) {
	var users []domain.AdminUser
	for _, u := range s.usersByID {
		users = append(users, u)
	}
	return users, nil
}

func (s *stubAdminUserRepo) Count(_ context.Context) (int, error) {
	return len(s.usersByID), nil
}

func (s *stubAdminUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	user, ok := s.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.LastLogin = &at
	s.usersByID[id] = user
	return nil
}

func (s *stubAdminUserRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	user, ok := s.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = hash
	s.usersByID[id] = user
	return nil
}

type stubSessionRepo struct {
	sessionsByToken map[string]domain.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessionsByToken: make(map[string]domain.Session)}
}

func (s *stubSessionRepo) Replace(_ context.Context, session domain.Session) ([]string, error) {
	var replaced []string
	for token, existing := range s.sessionsByToken {
		if existing.UserID == session.UserID {
			replaced = append(replaced, token)
			delete(s.sessionsByToken, token)
		}
	}
	s.sessionsByToken[session.Token] = session
	return replaced, nil
}

func (s *stubSessionRepo) GetByToken(_ context.Context, token string) (domain.Session, error) {
	session, ok := s.sessionsByToken[token]
	if !ok {
		return domain.Session{}, pgx.ErrNoRows
	}
	return session, nil
}

func (s *stubSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(s.sessionsByToken, token)
	return nil
}

func (s *stubSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for token, session := range s.sessionsByToken {
		if session.ExpiresAt.Before(now) {
			delete(s.sessionsByToken, token)
			n++
		}
	}
	return n, nil
}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authSvc := service.NewAuthService(zap.NewNop(), newStubAdminUserRepo(), newStubSessionRepo(), service.NewMemorySessionCache())
	authH := NewAuthHandler(zap.NewNop(), authSvc)

	r := gin.New()
	auth := r.Group("/auth")
	auth.GET("/status", authH.Status)
	auth.POST("/bootstrap", authH.Bootstrap)
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout)
	auth.GET("/session", authH.Session)
	auth.POST("/password", authH.ChangePassword)
	auth.GET("/accounts", authH.ListAccounts)

	admin := r.Group("/admin", SessionAuthMiddleware(authSvc))
	admin.GET("/ping", func(c *gin.Context) {
		account, _ := GetAuthAccount(c)
		c.JSON(http.StatusOK, gin.H{"email": account.Email})
	})

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, parsed
}

func bootstrapAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/auth/bootstrap", "", gin.H{
		"email": "admin@site.com", "password": "secret123", "name": "Admin",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("bootstrap: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	w, resp := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "admin@site.com", "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatalf("expected token in login response, got %v", resp)
	}
	return token
}

func TestAuthEndpoints_BootstrapStatusAndConflict(t *testing.T) {
	r := newAuthTestRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/auth/status", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", w.Code)
	}
	if exists, _ := resp["exists"].(bool); exists {
		t.Fatalf("expected no admin before bootstrap")
	}

	w, _ = doJSON(t, r, http.MethodPost, "/auth/bootstrap", "", gin.H{
		"email": "admin@site.com", "password": "secret123", "name": "Admin",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("bootstrap: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodPost, "/auth/bootstrap", "", gin.H{
		"email": "second@site.com", "password": "pw", "name": "Second",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("second bootstrap: expected 409, got %d", w.Code)
	}

	w, resp = doJSON(t, r, http.MethodGet, "/auth/status", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", w.Code)
	}
	if exists, _ := resp["exists"].(bool); !exists {
		t.Fatalf("expected admin after bootstrap")
	}
	if count, _ := resp["count"].(float64); count != 1 {
		t.Fatalf("expected count 1, got %v", resp["count"])
	}
}

func TestAuthEndpoints_LoginFailures(t *testing.T) {
	r := newAuthTestRouter(t)
	_ = bootstrapAndLogin(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "admin@site.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "nobody@site.com", "password": "whatever",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": "not-an-email"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", w.Code)
	}
}

func TestAuthEndpoints_SessionLifecycle(t *testing.T) {
	r := newAuthTestRouter(t)
	token := bootstrapAndLogin(t, r)

	w, resp := doJSON(t, r, http.MethodGet, "/auth/session", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("session: expected 200, got %d", w.Code)
	}
	account, ok := resp["account"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected account object, got %v", resp["account"])
	}
	if account["email"] != "admin@site.com" {
		t.Fatalf("expected account email, got %v", account["email"])
	}

	// Sin token la sesion es null, no un error.
	w, resp = doJSON(t, r, http.MethodGet, "/auth/session", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("session without token: expected 200, got %d", w.Code)
	}
	if resp["account"] != nil {
		t.Fatalf("expected null account, got %v", resp["account"])
	}

	w, resp = doJSON(t, r, http.MethodPost, "/auth/logout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}
	if success, _ := resp["success"].(bool); !success {
		t.Fatalf("expected success true, got %v", resp)
	}

	// Logout repetido sigue siendo success.
	w, _ = doJSON(t, r, http.MethodPost, "/auth/logout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("repeat logout: expected 200, got %d", w.Code)
	}

	w, resp = doJSON(t, r, http.MethodGet, "/auth/session", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("session after logout: expected 200, got %d", w.Code)
	}
	if resp["account"] != nil {
		t.Fatalf("expected null account after logout, got %v", resp["account"])
	}
}

func TestAuthEndpoints_AdminGate(t *testing.T) {
	r := newAuthTestRouter(t)
	token := bootstrapAndLogin(t, r)

	w, resp := doJSON(t, r, http.MethodGet, "/admin/ping", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin with token: expected 200, got %d", w.Code)
	}
	if resp["email"] != "admin@site.com" {
		t.Fatalf("expected account in context, got %v", resp)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/admin/ping", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("admin without token: expected 401, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/admin/ping", "never-issued", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("admin with bad token: expected 401, got %d", w.Code)
	}
}

func TestAuthEndpoints_ChangePassword(t *testing.T) {
	r := newAuthTestRouter(t)
	token := bootstrapAndLogin(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/auth/password", "", gin.H{
		"current_password": "secret123", "new_password": "newpass456",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("without session: expected 401, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/auth/password", token, gin.H{
		"current_password": "wrong", "new_password": "newpass456",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("wrong current: expected 400, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/auth/password", token, gin.H{
		"current_password": "secret123", "new_password": "newpass456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("change password: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "admin@site.com", "password": "secret123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("old password after change: expected 401, got %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "admin@site.com", "password": "newpass456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("new password: expected 200, got %d", w.Code)
	}
}

func TestAuthEndpoints_ListAccounts(t *testing.T) {
	r := newAuthTestRouter(t)
	token := bootstrapAndLogin(t, r)

	w, resp := doJSON(t, r, http.MethodGet, "/auth/accounts", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("accounts: expected 200, got %d", w.Code)
	}
	accounts, ok := resp["accounts"].([]interface{})
	if !ok || len(accounts) != 1 {
		t.Fatalf("expected one account, got %v", resp["accounts"])
	}
	entry := accounts[0].(map[string]interface{})
	if _, leaked := entry["password_hash"]; leaked {
		t.Fatalf("password digest must never appear in responses")
	}

	w, resp = doJSON(t, r, http.MethodGet, "/auth/accounts", "bogus", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("accounts with bad token: expected 200, got %d", w.Code)
	}
	if accounts, _ := resp["accounts"].([]interface{}); len(accounts) != 0 {
		t.Fatalf("expected empty list for bad token, got %v", resp["accounts"])
	}
}
