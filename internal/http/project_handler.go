package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// ProjectHandler mantiene dependencias para endpoints de proyectos.
type ProjectHandler struct {
	logger   *zap.Logger
	projects repository.ProjectRepository
}

func NewProjectHandler(logger *zap.Logger, projects repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{
		logger:   logger,
		projects: projects,
	}
}

type projectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tech        []string `json:"tech"`
	Image       string   `json:"image"`
	URL         string   `json:"url"`
	Repo        string   `json:"repo"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
}

// List maneja GET /site/projects.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list projects failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list projects"})
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// ListFeatured maneja GET /site/projects/featured.
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects, err := h.projects.ListFeatured(c.Request.Context())
	if err != nil {
		h.logger.Error("list featured projects failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list projects"})
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Get maneja GET /site/projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.logger.Error("get project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// Create maneja POST /admin/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create project request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	project := domain.Project{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Tech:        req.Tech,
		Image:       req.Image,
		URL:         req.URL,
		Repo:        req.Repo,
		Featured:    req.Featured,
		Order:       req.Order,
		CreatedAt:   time.Now().UTC(),
	}
	if project.Tech == nil {
		project.Tech = []string{}
	}

	if err := h.projects.Create(c.Request.Context(), project); err != nil {
		h.logger.Error("create project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create project"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// Update maneja PUT /admin/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update project request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	project := domain.Project{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Tech:        req.Tech,
		Image:       req.Image,
		URL:         req.URL,
		Repo:        req.Repo,
		Featured:    req.Featured,
		Order:       req.Order,
	}
	if project.Tech == nil {
		project.Tech = []string{}
	}

	if err := h.projects.Update(c.Request.Context(), project); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.logger.Error("update project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// Delete maneja DELETE /admin/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("delete project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
