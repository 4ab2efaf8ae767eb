package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// CollectionHandler mantiene dependencias para las listas ordenadas del sitio
// (skills, technologies, stats, social links, experience). El valor de orden
// lo calcula y envia el cliente; aqui solo se persiste.
type CollectionHandler struct {
	logger       *zap.Logger
	skills       repository.SkillRepository
	technologies repository.TechnologyRepository
	stats        repository.StatRepository
	socialLinks  repository.SocialLinkRepository
	experience   repository.ExperienceRepository
}

func NewCollectionHandler(
	logger *zap.Logger,
	skills repository.SkillRepository,
	technologies repository.TechnologyRepository,
	stats repository.StatRepository,
	socialLinks repository.SocialLinkRepository,
	experience repository.ExperienceRepository,
) *CollectionHandler {
	return &CollectionHandler{
		logger:       logger,
		skills:       skills,
		technologies: technologies,
		stats:        stats,
		socialLinks:  socialLinks,
		experience:   experience,
	}
}

// ListSkills maneja GET /site/skills.
func (h *CollectionHandler) ListSkills(c *gin.Context) {
	skills, err := h.skills.List(c.Request.Context())
	if err != nil {
		h.listError(c, err, "skills")
		return
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// CreateSkill maneja POST /admin/skills.
func (h *CollectionHandler) CreateSkill(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Order       int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	skill := domain.Skill{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	}
	if err := h.skills.Create(c.Request.Context(), skill); err != nil {
		h.writeError(c, err, "skill")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"skill": skill})
}

// UpdateSkill maneja PUT /admin/skills/:id.
func (h *CollectionHandler) UpdateSkill(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Order       int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	skill := domain.Skill{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	}
	if err := h.skills.Update(c.Request.Context(), skill); err != nil {
		h.writeError(c, err, "skill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"skill": skill})
}

// DeleteSkill maneja DELETE /admin/skills/:id.
func (h *CollectionHandler) DeleteSkill(c *gin.Context) {
	if err := h.skills.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "skill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListTechnologies maneja GET /site/technologies.
func (h *CollectionHandler) ListTechnologies(c *gin.Context) {
	techs, err := h.technologies.List(c.Request.Context())
	if err != nil {
		h.listError(c, err, "technologies")
		return
	}
	if techs == nil {
		techs = []domain.Technology{}
	}
	c.JSON(http.StatusOK, gin.H{"technologies": techs})
}

// CreateTechnology maneja POST /admin/technologies.
func (h *CollectionHandler) CreateTechnology(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	tech := domain.Technology{ID: uuid.NewString(), Name: req.Name, Order: req.Order}
	if err := h.technologies.Create(c.Request.Context(), tech); err != nil {
		h.writeError(c, err, "technology")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"technology": tech})
}

// UpdateTechnology maneja PUT /admin/technologies/:id.
func (h *CollectionHandler) UpdateTechnology(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	tech := domain.Technology{ID: c.Param("id"), Name: req.Name, Order: req.Order}
	if err := h.technologies.Update(c.Request.Context(), tech); err != nil {
		h.writeError(c, err, "technology")
		return
	}
	c.JSON(http.StatusOK, gin.H{"technology": tech})
}

// DeleteTechnology maneja DELETE /admin/technologies/:id.
func (h *CollectionHandler) DeleteTechnology(c *gin.Context) {
	if err := h.technologies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "technology")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListStats maneja GET /site/stats.
func (h *CollectionHandler) ListStats(c *gin.Context) {
	stats, err := h.stats.List(c.Request.Context())
	if err != nil {
		h.listError(c, err, "stats")
		return
	}
	if stats == nil {
		stats = []domain.Stat{}
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// CreateStat maneja POST /admin/stats.
func (h *CollectionHandler) CreateStat(c *gin.Context) {
	var req struct {
		Value string `json:"value" binding:"required"`
		Label string `json:"label" binding:"required"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	stat := domain.Stat{ID: uuid.NewString(), Value: req.Value, Label: req.Label, Order: req.Order}
	if err := h.stats.Create(c.Request.Context(), stat); err != nil {
		h.writeError(c, err, "stat")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"stat": stat})
}

// UpdateStat maneja PUT /admin/stats/:id.
func (h *CollectionHandler) UpdateStat(c *gin.Context) {
	var req struct {
		Value string `json:"value" binding:"required"`
		Label string `json:"label" binding:"required"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	stat := domain.Stat{ID: c.Param("id"), Value: req.Value, Label: req.Label, Order: req.Order}
	if err := h.stats.Update(c.Request.Context(), stat); err != nil {
		h.writeError(c, err, "stat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stat": stat})
}

// DeleteStat maneja DELETE /admin/stats/:id.
func (h *CollectionHandler) DeleteStat(c *gin.Context) {
	if err := h.stats.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "stat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListSocialLinks maneja GET /site/social-links. Solo los visibles.
func (h *CollectionHandler) ListSocialLinks(c *gin.Context) {
	links, err := h.socialLinks.ListVisible(c.Request.Context())
	if err != nil {
		h.listError(c, err, "social links")
		return
	}
	if links == nil {
		links = []domain.SocialLink{}
	}
	c.JSON(http.StatusOK, gin.H{"social_links": links})
}

// CreateSocialLink maneja POST /admin/social-links.
func (h *CollectionHandler) CreateSocialLink(c *gin.Context) {
	var req struct {
		Platform string `json:"platform" binding:"required"`
		URL      string `json:"url" binding:"required"`
		Icon     string `json:"icon"`
		Order    int    `json:"order"`
		Visible  bool   `json:"visible"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	link := domain.SocialLink{
		ID:       uuid.NewString(),
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
		Order:    req.Order,
		Visible:  req.Visible,
	}
	if err := h.socialLinks.Create(c.Request.Context(), link); err != nil {
		h.writeError(c, err, "social link")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"social_link": link})
}

// UpdateSocialLink maneja PUT /admin/social-links/:id.
func (h *CollectionHandler) UpdateSocialLink(c *gin.Context) {
	var req struct {
		Platform string `json:"platform" binding:"required"`
		URL      string `json:"url" binding:"required"`
		Icon     string `json:"icon"`
		Order    int    `json:"order"`
		Visible  bool   `json:"visible"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	link := domain.SocialLink{
		ID:       c.Param("id"),
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
		Order:    req.Order,
		Visible:  req.Visible,
	}
	if err := h.socialLinks.Update(c.Request.Context(), link); err != nil {
		h.writeError(c, err, "social link")
		return
	}
	c.JSON(http.StatusOK, gin.H{"social_link": link})
}

// DeleteSocialLink maneja DELETE /admin/social-links/:id.
func (h *CollectionHandler) DeleteSocialLink(c *gin.Context) {
	if err := h.socialLinks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "social link")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListExperience maneja GET /site/experience.
func (h *CollectionHandler) ListExperience(c *gin.Context) {
	exps, err := h.experience.List(c.Request.Context())
	if err != nil {
		h.listError(c, err, "experience")
		return
	}
	if exps == nil {
		exps = []domain.Experience{}
	}
	c.JSON(http.StatusOK, gin.H{"experience": exps})
}

// CreateExperience maneja POST /admin/experience.
func (h *CollectionHandler) CreateExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	exp := req.toDomain(uuid.NewString())
	if err := h.experience.Create(c.Request.Context(), exp); err != nil {
		h.writeError(c, err, "experience")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"experience": exp})
}

// UpdateExperience maneja PUT /admin/experience/:id.
func (h *CollectionHandler) UpdateExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	exp := req.toDomain(c.Param("id"))
	if err := h.experience.Update(c.Request.Context(), exp); err != nil {
		h.writeError(c, err, "experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"experience": exp})
}

// DeleteExperience maneja DELETE /admin/experience/:id.
func (h *CollectionHandler) DeleteExperience(c *gin.Context) {
	if err := h.experience.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (r experienceRequest) toDomain(id string) domain.Experience {
	return domain.Experience{
		ID:          id,
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
		Description: r.Description,
		Order:       r.Order,
	}
}

func (h *CollectionHandler) badRequest(c *gin.Context, err error) {
	h.logger.Warn("invalid request", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}

func (h *CollectionHandler) listError(c *gin.Context, err error, name string) {
	h.logger.Error("list "+name+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list " + name})
}

func (h *CollectionHandler) writeError(c *gin.Context, err error, name string) {
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": name + " not found"})
		return
	}
	h.logger.Error("write "+name+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save " + name})
}
