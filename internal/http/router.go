package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	authSvc *service.AuthService,
	authH *AuthHandler,
	projectH *ProjectHandler,
	messageH *MessageHandler,
	sectionH *SectionHandler,
	collectionH *CollectionHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	// Lecturas publicas del sitio.
	site := r.Group("/site")
	site.GET("/hero", sectionH.GetHero)
	site.GET("/about", sectionH.GetAbout)
	site.GET("/contact", sectionH.GetContact)
	site.GET("/settings", sectionH.GetSettings)
	site.GET("/skills", collectionH.ListSkills)
	site.GET("/technologies", collectionH.ListTechnologies)
	site.GET("/stats", collectionH.ListStats)
	site.GET("/social-links", collectionH.ListSocialLinks)
	site.GET("/experience", collectionH.ListExperience)
	site.GET("/projects", projectH.List)
	site.GET("/projects/featured", projectH.ListFeatured)
	site.GET("/projects/:id", projectH.Get)

	r.POST("/contact", messageH.Submit)

	auth := r.Group("/auth")
	auth.GET("/status", authH.Status)
	auth.POST("/bootstrap", authH.Bootstrap)
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout)
	auth.GET("/session", authH.Session)
	auth.POST("/password", authH.ChangePassword)
	auth.GET("/accounts", authH.ListAccounts)

	admin := r.Group("/admin", SessionAuthMiddleware(authSvc))
	admin.POST("/projects", projectH.Create)
	admin.PUT("/projects/:id", projectH.Update)
	admin.DELETE("/projects/:id", projectH.Delete)

	admin.GET("/messages", messageH.List)
	admin.GET("/messages/unread", messageH.ListUnread)
	admin.POST("/messages/:id/read", messageH.MarkRead)
	admin.DELETE("/messages/:id", messageH.Delete)

	admin.PUT("/site/hero", sectionH.PutHero)
	admin.PUT("/site/about", sectionH.PutAbout)
	admin.PUT("/site/contact", sectionH.PutContact)
	admin.PUT("/site/settings", sectionH.PutSettings)

	admin.POST("/skills", collectionH.CreateSkill)
	admin.PUT("/skills/:id", collectionH.UpdateSkill)
	admin.DELETE("/skills/:id", collectionH.DeleteSkill)
	admin.POST("/technologies", collectionH.CreateTechnology)
	admin.PUT("/technologies/:id", collectionH.UpdateTechnology)
	admin.DELETE("/technologies/:id", collectionH.DeleteTechnology)
	admin.POST("/stats", collectionH.CreateStat)
	admin.PUT("/stats/:id", collectionH.UpdateStat)
	admin.DELETE("/stats/:id", collectionH.DeleteStat)
	admin.POST("/social-links", collectionH.CreateSocialLink)
	admin.PUT("/social-links/:id", collectionH.UpdateSocialLink)
	admin.DELETE("/social-links/:id", collectionH.DeleteSocialLink)
	admin.POST("/experience", collectionH.CreateExperience)
	admin.PUT("/experience/:id", collectionH.UpdateExperience)
	admin.DELETE("/experience/:id", collectionH.DeleteExperience)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
