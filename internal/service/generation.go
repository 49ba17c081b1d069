package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/repository"
	"github.com/atelierhq/design-studio-api/internal/service/ai"
	"github.com/atelierhq/design-studio-api/internal/utils"
	"github.com/atelierhq/design-studio-api/pkg/logger"
)

// renders produced per generation request
const defaultImageCount = 3

//go:generate mockery --name ContentProvider --output ../mocks
type ContentProvider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateImages(ctx context.Context, prompt string, count int) ([]string, error)
	GeneratePalette(ctx context.Context, prompt string) ([]string, error)
	GenerateProductList(ctx context.Context, prompt string) ([]string, error)
}

//go:generate mockery --name DesignBroadcaster --output ../mocks
type DesignBroadcaster interface {
	BroadcastDesign(design *dto.DesignResponse)
}

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendIndexMessage(ctx context.Context, design *domain.Design) error
	SendMirrorMessage(ctx context.Context, design *domain.Design) error
	SendReconcileMessage(ctx context.Context, accountID string, imageURLs []string, reason string) error
}

// GenerationService runs the design generation workflow: validate, check
// quota, call the provider, compose, persist and charge quota in one
// transaction, then fan out to indexing, mirroring and stream clients.
type GenerationService struct {
	repo        repository.Repository
	provider    ContentProvider
	sqsSvc      SQSService
	broadcaster DesignBroadcaster
	logger      *logger.Logger
	imageCount  int
}

func NewGenerationService(repo repository.Repository, provider ContentProvider, sqsSvc SQSService, log *logger.Logger) *GenerationService {
	return &GenerationService{
		repo:       repo,
		provider:   provider,
		sqsSvc:     sqsSvc,
		logger:     log,
		imageCount: defaultImageCount,
	}
}

// SetDesignBroadcaster sets the WebSocket broadcaster
func (s *GenerationService) SetDesignBroadcaster(broadcaster DesignBroadcaster) {
	s.broadcaster = broadcaster
}

// GenerateDesign runs one generation request end to end. Quota is only
// charged when the composed design is persisted; a provider call that fails
// or cannot be stored never bills the account.
func (s *GenerationService) GenerateDesign(ctx context.Context, req GenerationRequest) (*dto.DesignResponse, error) {
	req, err := ValidateGenerationRequest(req)
	if err != nil {
		return nil, err
	}

	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.Account().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	// Fast check before spending provider budget. The authoritative check is
	// the guarded increment inside CreateAndCharge.
	if account.QuotaRemaining() == 0 {
		return nil, ErrQuotaExceeded
	}

	if _, err := s.repo.Project().GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	output, err := s.callProvider(ctx, req)
	if err != nil {
		return nil, err
	}

	design := ComposeDesign(accountID, req, output)
	if err := s.repo.Design().CreateAndCharge(ctx, design); err != nil {
		if errors.Is(err, repository.ErrQuotaExhausted) {
			// Lost a race against a concurrent generation. The provider
			// output is dropped and not billed.
			return nil, ErrQuotaExceeded
		}
		s.reportOrphanedOutput(accountID, output, err)
		return nil, &PersistenceError{Op: "design", Err: err}
	}

	s.recordActivity(ctx, accountID, domain.ActivityDesignGenerated, "design", design.ID, map[string]string{
		"room_type": design.RoomType,
		"style":     design.Style,
	})

	// Indexing and mirroring are asynchronous; the design is already durable.
	if err := s.sqsSvc.SendIndexMessage(ctx, design); err != nil {
		s.logger.Errorf("failed to send index message for design %s: %v", design.ID, err)
	}
	if err := s.sqsSvc.SendMirrorMessage(ctx, design); err != nil {
		s.logger.Errorf("failed to send mirror message for design %s: %v", design.ID, err)
	}

	resp := dto.FromDesign(design)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastDesign(resp)
	}

	return resp, nil
}

// callProvider gathers the description, palette, product list and renders
// for one validated request.
func (s *GenerationService) callProvider(ctx context.Context, req GenerationRequest) (ProviderOutput, error) {
	description, err := s.provider.GenerateText(ctx, ai.DescriptionPrompt(req.RoomType, req.Style, req.Budget, req.Keywords))
	if err != nil {
		return ProviderOutput{}, translateProviderError(err)
	}

	palette, err := s.provider.GeneratePalette(ctx, ai.PalettePrompt(req.RoomType, req.Style))
	if err != nil {
		return ProviderOutput{}, translateProviderError(err)
	}

	products, err := s.provider.GenerateProductList(ctx, ai.ProductListPrompt(req.RoomType, req.Style, req.Budget))
	if err != nil {
		return ProviderOutput{}, translateProviderError(err)
	}

	images, err := s.provider.GenerateImages(ctx, ai.ImagePrompt(req.RoomType, req.Style, description), s.imageCount)
	if err != nil {
		return ProviderOutput{}, translateProviderError(err)
	}

	return ProviderOutput{
		Description:  description,
		ImageURLs:    images,
		ColorPalette: palette,
		ProductList:  products,
	}, nil
}

// GenerateMarketing drafts marketing content for a project. Each draft
// counts against the generation quota.
func (s *GenerationService) GenerateMarketing(ctx context.Context, req dto.GenerateMarketingRequest) (*dto.MarketingContentResponse, error) {
	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.loadProjectWithQuotaCheck(ctx, accountID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	content, err := s.provider.GenerateText(ctx, ai.MarketingPrompt(req.ContentType, req.Platform, project.Title, project.Description))
	if err != nil {
		return nil, translateProviderError(err)
	}

	if err := s.chargeQuota(ctx, accountID); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, accountID, domain.ActivityMarketingDrafted, "project", project.ID, map[string]string{
		"content_type": req.ContentType,
		"platform":     req.Platform,
	})

	return &dto.MarketingContentResponse{
		ProjectID:   project.ID,
		ContentType: req.ContentType,
		Platform:    req.Platform,
		Content:     content,
	}, nil
}

// GenerateInsights analyzes a project's budget and progress. Each analysis
// counts against the generation quota.
func (s *GenerationService) GenerateInsights(ctx context.Context, projectID string) (*dto.ProjectInsightsResponse, error) {
	accountID, err := utils.GetAccountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.loadProjectWithQuotaCheck(ctx, accountID, projectID)
	if err != nil {
		return nil, err
	}

	insights, err := s.provider.GenerateText(ctx, ai.InsightsPrompt(project.Title, project.Description, project.Status, project.Budget, &project.Spent))
	if err != nil {
		return nil, translateProviderError(err)
	}

	if err := s.chargeQuota(ctx, accountID); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, accountID, domain.ActivityInsightsGenerated, "project", project.ID, nil)

	return &dto.ProjectInsightsResponse{
		ProjectID: project.ID,
		Insights:  insights,
	}, nil
}

// loadProjectWithQuotaCheck verifies quota headroom and project ownership
// before any provider call is made.
func (s *GenerationService) loadProjectWithQuotaCheck(ctx context.Context, accountID, projectID string) (*domain.Project, error) {
	account, err := s.repo.Account().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if account.QuotaRemaining() == 0 {
		return nil, ErrQuotaExceeded
	}

	project, err := s.repo.Project().GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	return project, nil
}

// chargeQuota performs the guarded increment for content that is returned
// directly to the caller rather than persisted.
func (s *GenerationService) chargeQuota(ctx context.Context, accountID string) error {
	charged, err := s.repo.Account().ChargeGeneration(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to charge generation: %w", err)
	}
	if !charged {
		return ErrQuotaExceeded
	}
	return nil
}

// reportOrphanedOutput records provider output that could not be persisted.
// The asset worker picks the report up so operators can reconcile billing
// and clean up any mirrored assets.
func (s *GenerationService) reportOrphanedOutput(accountID string, output ProviderOutput, cause error) {
	s.logger.Errorf("provider output orphaned for account %s: %v", accountID, cause)

	// Deliberately not the request context: the report should go out even
	// when the request is already being torn down.
	ctx := context.Background()
	if err := s.sqsSvc.SendReconcileMessage(ctx, accountID, output.ImageURLs, cause.Error()); err != nil {
		s.logger.Errorf("failed to send reconcile message for account %s: %v", accountID, err)
	}
}

func (s *GenerationService) recordActivity(ctx context.Context, accountID string, action domain.ActivityAction, resourceType, resourceID string, metadata map[string]string) {
	activity := &domain.Activity{
		AccountID:    accountID,
		Action:       string(action),
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
	if metadata != nil {
		if data, err := json.Marshal(metadata); err == nil {
			activity.Metadata = data
		}
	}

	if err := s.repo.Activity().Create(ctx, activity); err != nil {
		s.logger.Errorf("failed to record %s activity for account %s: %v", action, accountID, err)
	}
}

func translateProviderError(err error) error {
	if errors.Is(err, ai.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return ErrProviderTimeout
	}
	var providerErr *ai.Error
	if errors.As(err, &providerErr) {
		return &ProviderError{StatusCode: providerErr.StatusCode, Message: providerErr.Message}
	}
	return &ProviderError{Message: err.Error()}
}
