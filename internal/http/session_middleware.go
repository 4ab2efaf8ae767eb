package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
)

const authAccountKey = "auth_account"

// SessionAuthMiddleware valida el bearer token de sesion y guarda la cuenta
// en el contexto. Un token ausente, desconocido o vencido corta con 401.
func SessionAuthMiddleware(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
			c.Abort()
			return
		}

		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		account, err := authSvc.ValidateSession(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not validate session"})
			c.Abort()
			return
		}
		if account == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			c.Abort()
			return
		}

		c.Set(authAccountKey, *account)
		c.Next()
	}
}

// GetAuthAccount obtiene la cuenta autenticada desde el contexto.
func GetAuthAccount(c *gin.Context) (domain.AccountView, bool) {
	val, ok := c.Get(authAccountKey)
	if !ok {
		return domain.AccountView{}, false
	}
	account, ok := val.(domain.AccountView)
	return account, ok
}

// bearerToken extrae el token del header Authorization; cadena vacia si falta.
func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}
