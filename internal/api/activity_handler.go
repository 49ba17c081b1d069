package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
)

//go:generate mockery --name ActivityService --output ../mocks
type ActivityService interface {
	List(ctx context.Context, filter *domain.ActivityFilter) ([]dto.ActivityResponse, error)
}

type ActivityHandler struct {
	*BaseHandler
	service ActivityService
}

func NewActivityHandler(service ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ListActivities godoc
// @Summary List account activity
// @Description Get the account's recent activity feed, newest first
// @Tags activities
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param action query string false "Filter by action"
// @Param resource_type query string false "Filter by resource type"
// @Success 200 {array} dto.ActivityResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	filter := &domain.ActivityFilter{
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
	}

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

	activities, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}
