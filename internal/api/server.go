package api

import (
	"github.com/gin-gonic/gin"

	"github.com/atelierhq/design-studio-api/internal/middleware"
	"github.com/atelierhq/design-studio-api/internal/service"
	"github.com/atelierhq/design-studio-api/internal/service/pubsub"
	"github.com/atelierhq/design-studio-api/pkg/logger"
)

type Server struct {
	account    *AccountHandler
	project    *ProjectHandler
	design     *DesignHandler
	activity   *ActivityHandler
	websocket  *WebSocketHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	accountService *service.AccountService,
	projectService *service.ProjectService,
	generationService *service.GenerationService,
	designService *service.DesignService,
	activityService *service.ActivityService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		account:    NewAccountHandler(accountService),
		project:    NewProjectHandler(projectService),
		design:     NewDesignHandler(generationService, designService),
		activity:   NewActivityHandler(activityService),
		websocket:  NewWebSocketHandler(logger, pubsub),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(5000)) // 5k requests per minute per IP

	{
		accounts := api.Group("/accounts")
		{
			accounts.POST("", s.account.CreateAccount)
			accounts.GET("", s.auth.JWTAuth(), s.auth.RequireTier("agency"), s.account.ListAccounts)
			accounts.GET("/me", s.auth.JWTAuth(), s.account.GetAccount)
			accounts.PUT("/me/plan", s.auth.JWTAuth(), s.account.UpdatePlanTier)
		}

		projects := api.Group("/projects", s.auth.JWTAuth(), s.rateLimit.AccountRateLimit())
		{
			projects.POST("", s.project.CreateProject)
			projects.GET("", s.project.ListProjects)
			projects.GET("/:id", s.project.GetProject)
			projects.DELETE("/:id", s.project.DeleteProject)
			projects.POST("/:id/insights", s.design.GenerateInsights)
		}

		designs := api.Group("/designs", s.auth.JWTAuth(), s.rateLimit.AccountRateLimit())
		{
			designs.POST("/generate", s.design.GenerateDesign)
			designs.GET("", s.design.ListDesigns)
			designs.GET("/:id", s.design.GetDesign)
			designs.DELETE("/:id", s.design.DeleteDesign)
			designs.GET("/stream", s.websocket.HandleWebSocket)
		}

		// Marketing drafts are a paid feature
		marketing := api.Group("/marketing", s.auth.JWTAuth(), s.rateLimit.AccountRateLimit(), s.auth.RequireTier("pro", "agency"))
		{
			marketing.POST("/draft", s.design.GenerateMarketing)
		}

		activities := api.Group("/activities", s.auth.JWTAuth(), s.rateLimit.AccountRateLimit())
		{
			activities.GET("", s.activity.ListActivities)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting designs
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
