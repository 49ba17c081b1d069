package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
)

//go:generate mockery --name ProjectService --output ../mocks
type ProjectService interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error)
	List(ctx context.Context) ([]dto.ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type ProjectHandler struct {
	*BaseHandler
	service ProjectService
}

func NewProjectHandler(service ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// CreateProject godoc
// @Summary Create a new project
// @Description Create a project for the calling account. Free-tier accounts are capped at two projects
// @Tags projects
// @Accept json
// @Produce json
// @Param body body dto.CreateProjectRequest true "Project object"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Kind: "validation", Error: err.Error()})
		return
	}

	project, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects godoc
// @Summary List projects
// @Description Get all projects of the calling account
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get a project
// @Description Get a project by its ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Delete a project and its generated designs
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
