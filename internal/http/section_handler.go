package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// SectionHandler mantiene dependencias para las secciones singleton del sitio.
// El contenido por defecto cuando una seccion no existe es decision de la UI;
// aqui una seccion ausente responde 404.
type SectionHandler struct {
	logger   *zap.Logger
	sections repository.SectionRepository
}

func NewSectionHandler(logger *zap.Logger, sections repository.SectionRepository) *SectionHandler {
	return &SectionHandler{
		logger:   logger,
		sections: sections,
	}
}

// GetHero maneja GET /site/hero.
func (h *SectionHandler) GetHero(c *gin.Context) {
	hero, err := h.sections.GetHero(c.Request.Context())
	if err != nil {
		h.sectionError(c, err, "hero")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hero": hero})
}

// PutHero maneja PUT /admin/site/hero.
func (h *SectionHandler) PutHero(c *gin.Context) {
	var req struct {
		Name             string `json:"name" binding:"required"`
		StatusBadge      string `json:"status_badge"`
		StatusVisible    bool   `json:"status_visible"`
		Headline         string `json:"headline" binding:"required"`
		Subheadline      string `json:"subheadline"`
		CTAPrimaryText   string `json:"cta_primary_text"`
		CTASecondaryText string `json:"cta_secondary_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid hero request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	hero := domain.HeroSection{
		Name:             req.Name,
		StatusBadge:      req.StatusBadge,
		StatusVisible:    req.StatusVisible,
		Headline:         req.Headline,
		Subheadline:      req.Subheadline,
		CTAPrimaryText:   req.CTAPrimaryText,
		CTASecondaryText: req.CTASecondaryText,
	}
	if err := h.sections.UpsertHero(c.Request.Context(), hero); err != nil {
		h.logger.Error("upsert hero failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save hero"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hero": hero})
}

// GetAbout maneja GET /site/about.
func (h *SectionHandler) GetAbout(c *gin.Context) {
	about, err := h.sections.GetAbout(c.Request.Context())
	if err != nil {
		h.sectionError(c, err, "about")
		return
	}
	c.JSON(http.StatusOK, gin.H{"about": about})
}

// PutAbout maneja PUT /admin/site/about.
func (h *SectionHandler) PutAbout(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid about request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	about := domain.AboutSection{Title: req.Title, Description: req.Description}
	if err := h.sections.UpsertAbout(c.Request.Context(), about); err != nil {
		h.logger.Error("upsert about failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save about"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"about": about})
}

// GetContact maneja GET /site/contact.
func (h *SectionHandler) GetContact(c *gin.Context) {
	contact, err := h.sections.GetContact(c.Request.Context())
	if err != nil {
		h.sectionError(c, err, "contact")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// PutContact maneja PUT /admin/site/contact.
func (h *SectionHandler) PutContact(c *gin.Context) {
	var req struct {
		Title            string `json:"title" binding:"required"`
		Description      string `json:"description"`
		Email            string `json:"email" binding:"required,email"`
		Location         string `json:"location"`
		ResponseTimeText string `json:"response_time_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid contact section request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	contact := domain.ContactSection{
		Title:            req.Title,
		Description:      req.Description,
		Email:            req.Email,
		Location:         req.Location,
		ResponseTimeText: req.ResponseTimeText,
	}
	if err := h.sections.UpsertContact(c.Request.Context(), contact); err != nil {
		h.logger.Error("upsert contact section failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// GetSettings maneja GET /site/settings.
func (h *SectionHandler) GetSettings(c *gin.Context) {
	settings, err := h.sections.GetSettings(c.Request.Context())
	if err != nil {
		h.sectionError(c, err, "settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// PutSettings maneja PUT /admin/site/settings.
func (h *SectionHandler) PutSettings(c *gin.Context) {
	var req struct {
		SiteName        string   `json:"site_name" binding:"required"`
		SiteTitle       string   `json:"site_title" binding:"required"`
		SiteDescription string   `json:"site_description"`
		SiteKeywords    []string `json:"site_keywords"`
		AuthorName      string   `json:"author_name"`
		LogoText        string   `json:"logo_text"`
		FooterTagline   string   `json:"footer_tagline"`
		CopyrightName   string   `json:"copyright_name"`
		OGImage         string   `json:"og_image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid settings request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	settings := domain.SiteSettings{
		SiteName:        req.SiteName,
		SiteTitle:       req.SiteTitle,
		SiteDescription: req.SiteDescription,
		SiteKeywords:    req.SiteKeywords,
		AuthorName:      req.AuthorName,
		LogoText:        req.LogoText,
		FooterTagline:   req.FooterTagline,
		CopyrightName:   req.CopyrightName,
		OGImage:         req.OGImage,
	}
	if settings.SiteKeywords == nil {
		settings.SiteKeywords = []string{}
	}
	if err := h.sections.UpsertSettings(c.Request.Context(), settings); err != nil {
		h.logger.Error("upsert settings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SectionHandler) sectionError(c *gin.Context, err error, name string) {
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": name + " not configured"})
		return
	}
	h.logger.Error("get "+name+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get " + name})
}
