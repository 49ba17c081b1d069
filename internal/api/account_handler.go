package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/utils"
)

//go:generate mockery --name AccountService --output ../mocks
type AccountService interface {
	Create(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AccountResponse, error)
	UpdateTier(ctx context.Context, id string, req dto.UpdatePlanTierRequest) (*dto.AccountResponse, error)
	List(ctx context.Context) ([]dto.AccountResponse, error)
}

type AccountHandler struct {
	*BaseHandler
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount godoc
// @Summary Create a new account
// @Description Register a new studio account on the free tier unless another tier is given
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body dto.CreateAccountRequest true "Account object"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Kind: "validation", Error: err.Error()})
		return
	}

	account, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// GetAccount godoc
// @Summary Get the calling account
// @Description Get the authenticated account with its current generation usage and limit
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /accounts/me [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	ctx := h.RequestCtx(c)
	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	account, err := h.service.GetByID(ctx, accountID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// ListAccounts godoc
// @Summary List accounts
// @Description List all accounts with their tiers and usage. Agency tier only
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// UpdatePlanTier godoc
// @Summary Change the account's plan tier
// @Description Switch the calling account to another plan. Usage resets and the generation limit follows the new tier
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body dto.UpdatePlanTierRequest true "New plan tier"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /accounts/me/plan [put]
func (h *AccountHandler) UpdatePlanTier(c *gin.Context) {
	var req dto.UpdatePlanTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Kind: "validation", Error: err.Error()})
		return
	}

	ctx := h.RequestCtx(c)
	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	account, err := h.service.UpdateTier(ctx, accountID, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
