package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/service"
	"github.com/atelierhq/design-studio-api/pkg/utils"
)

//go:generate mockery --name GenerationService --output ../mocks
type GenerationService interface {
	GenerateDesign(ctx context.Context, req service.GenerationRequest) (*dto.DesignResponse, error)
	GenerateMarketing(ctx context.Context, req dto.GenerateMarketingRequest) (*dto.MarketingContentResponse, error)
	GenerateInsights(ctx context.Context, projectID string) (*dto.ProjectInsightsResponse, error)
}

//go:generate mockery --name DesignService --output ../mocks
type DesignService interface {
	GetByID(ctx context.Context, id string) (*dto.DesignResponse, error)
	List(ctx context.Context, filter *domain.DesignFilter) ([]dto.DesignResponse, error)
	Delete(ctx context.Context, id string) error
}

type DesignHandler struct {
	*BaseHandler
	generation GenerationService
	designs    DesignService
}

func NewDesignHandler(generation GenerationService, designs DesignService) *DesignHandler {
	return &DesignHandler{generation: generation, designs: designs}
}

// GenerateDesign godoc
// @Summary Generate a design concept
// @Description Run one AI generation: description, color palette, product list and rendered images for a room. Counts against the account's generation quota
// @Tags designs
// @Accept json
// @Produce json
// @Param body body dto.GenerateDesignRequest true "Generation request"
// @Success 201 {object} dto.DesignResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Failure 504 {object} dto.Error
// @Router /designs/generate [post]
func (h *DesignHandler) GenerateDesign(c *gin.Context) {
	var req dto.GenerateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Kind: "validation", Error: err.Error()})
		return
	}

	// Keywords arrive as one comma-separated string on the wire
	var keywords []string
	if strings.TrimSpace(req.Keywords) != "" {
		keywords = strings.Split(req.Keywords, ",")
	}

	design, err := h.generation.GenerateDesign(h.RequestCtx(c), service.GenerationRequest{
		ProjectID: req.ProjectID,
		RoomType:  req.RoomType,
		Style:     req.Style,
		Budget:    req.Budget,
		Keywords:  keywords,
	})
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, design)
}

// ListDesigns godoc
// @Summary List designs
// @Description List the account's designs with filtering. A free-text query searches descriptions and keywords
// @Tags designs
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param project_id query string false "Filter by project ID"
// @Param room_type query string false "Filter by room type"
// @Param style query string false "Filter by style"
// @Param q query string false "Free-text search over description and keywords"
// @Param start_time query string false "Filter by creation time from (RFC3339 or YYYY-MM-DD)"
// @Param end_time query string false "Filter by creation time to (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} dto.DesignResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /designs [get]
func (h *DesignHandler) ListDesigns(c *gin.Context) {
	filter, err := getDesignFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Kind: "validation", Error: err.Error()})
		return
	}

	designs, err := h.designs.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, designs)
}

// GetDesign godoc
// @Summary Get a design
// @Description Get a generated design by its ID
// @Tags designs
// @Produce json
// @Param id path string true "Design ID"
// @Success 200 {object} dto.DesignResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /designs/{id} [get]
func (h *DesignHandler) GetDesign(c *gin.Context) {
	design, err := h.designs.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, design)
}

// DeleteDesign godoc
// @Summary Delete a design
// @Description Delete a generated design and its search document
// @Tags designs
// @Param id path string true "Design ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /designs/{id} [delete]
func (h *DesignHandler) DeleteDesign(c *gin.Context) {
	if err := h.designs.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateMarketing godoc
// @Summary Draft marketing content
// @Description Generate a marketing draft for a project. Counts against the account's generation quota
// @Tags marketing
// @Accept json
// @Produce json
// @Param body body dto.GenerateMarketingRequest true "Marketing request"
// @Success 200 {object} dto.MarketingContentResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Failure 504 {object} dto.Error
// @Router /marketing/draft [post]
func (h *DesignHandler) GenerateMarketing(c *gin.Context) {
	var req dto.GenerateMarketingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Kind: "validation", Error: err.Error()})
		return
	}

	content, err := h.generation.GenerateMarketing(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// GenerateInsights godoc
// @Summary Generate project insights
// @Description Analyze a project's budget and progress. Counts against the account's generation quota
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectInsightsResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Failure 504 {object} dto.Error
// @Router /projects/{id}/insights [post]
func (h *DesignHandler) GenerateInsights(c *gin.Context) {
	insights, err := h.generation.GenerateInsights(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

func getDesignFilterFromQuery(c *gin.Context) (*domain.DesignFilter, error) {
	filter := &domain.DesignFilter{
		ProjectID: c.Query("project_id"),
		RoomType:  c.Query("room_type"),
		Style:     c.Query("style"),
		Query:     c.Query("q"),
	}

	// Parse pagination
	if page := c.Query("page"); page != "" {
		if pageNum, err := strconv.Atoi(page); err == nil {
			filter.Page = pageNum
		}
	}
	if pageSize := c.Query("page_size"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil {
			filter.PageSize = size
		}
	}

	// Parse time filters
	if startTime := c.Query("start_time"); startTime != "" {
		t, err := utils.ParseUserTime(startTime, false)
		if err != nil {
			return nil, err
		}
		filter.StartTime = t
	}
	if endTime := c.Query("end_time"); endTime != "" {
		t, err := utils.ParseUserTime(endTime, true)
		if err != nil {
			return nil, err
		}
		filter.EndTime = t
	}
	if !filter.StartTime.IsZero() && !filter.EndTime.IsZero() && filter.StartTime.After(filter.EndTime) {
		return nil, fmt.Errorf("start_time must be before end_time")
	}

	return filter, nil
}
