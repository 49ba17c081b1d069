package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/service"
	"github.com/atelierhq/design-studio-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// RespondError maps a service error to a status code and an error kind the
// client can branch on: fix the input, upgrade the plan, or try again later.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var providerErr *service.ProviderError
	var persistenceErr *service.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.Error{Kind: "validation", Error: err.Error()})
	case errors.Is(err, service.ErrQuotaExceeded):
		c.JSON(http.StatusForbidden, dto.Error{Kind: "quota_exceeded", Error: err.Error()})
	case errors.Is(err, service.ErrProjectLimitReached):
		c.JSON(http.StatusForbidden, dto.Error{Kind: "plan_limit", Error: err.Error()})
	case errors.Is(err, service.ErrProviderTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.Error{Kind: "provider_timeout", Error: err.Error()})
	case errors.As(err, &providerErr):
		c.JSON(http.StatusBadGateway, dto.Error{Kind: "provider_error", Error: err.Error()})
	case errors.As(err, &persistenceErr):
		c.JSON(http.StatusInternalServerError, dto.Error{Kind: "persistence_error", Error: err.Error()})
	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrDesignNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Kind: "not_found", Error: err.Error()})
	case errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.Error{Kind: "conflict", Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Kind: "internal", Error: err.Error()})
	}
}
