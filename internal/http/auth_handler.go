package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
)

// AuthHandler mantiene dependencias para endpoints de autenticacion.
type AuthHandler struct {
	logger   *zap.Logger
	authServ *service.AuthService
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, authServ *service.AuthService) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		authServ: authServ,
	}
}

// Status maneja GET /auth/status.
func (h *AuthHandler) Status(c *gin.Context) {
	exists, count, err := h.authServ.AdminExists(c.Request.Context())
	if err != nil {
		h.logger.Error("admin status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists, "count": count})
}

// Bootstrap maneja POST /auth/bootstrap.
func (h *AuthHandler) Bootstrap(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid bootstrap request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	account, err := h.authServ.CreateInitialAdmin(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyInitialized):
			c.JSON(http.StatusConflict, gin.H{"error": "admin already exists"})
			return
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrPasswordRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		default:
			h.logger.Error("bootstrap failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create admin"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// Login maneja POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, account, err := h.authServ.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "account": account})
}

// Logout maneja POST /auth/logout. Siempre responde success.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authServ.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session maneja GET /auth/session. Un token invalido no es un error: la
// respuesta lleva account null.
func (h *AuthHandler) Session(c *gin.Context) {
	account, err := h.authServ.ValidateSession(c.Request.Context(), bearerToken(c))
	if err != nil {
		h.logger.Error("validate session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not validate session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

// ChangePassword maneja POST /auth/password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid change password request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.authServ.ChangePassword(c.Request.Context(), bearerToken(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSession):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		case errors.Is(err, service.ErrIncorrectPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "current password is incorrect"})
			return
		case errors.Is(err, service.ErrPasswordRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		default:
			h.logger.Error("change password failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not change password"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListAccounts maneja GET /auth/accounts. Lista vacia para tokens sin sesion
// viva de admin, nunca un error.
func (h *AuthHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.authServ.ListAdminAccounts(c.Request.Context(), bearerToken(c))
	if err != nil {
		h.logger.Error("list accounts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list accounts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}
