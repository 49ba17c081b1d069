package dto

type CreateAccountRequest struct {
	Name     string `json:"name" binding:"required" example:"Nordic Interiors"`
	Email    string `json:"email" binding:"required,email" example:"studio@nordic-interiors.com"`
	PlanTier string `json:"plan_tier" example:"free"`
}

type UpdatePlanTierRequest struct {
	PlanTier string `json:"plan_tier" binding:"required" example:"pro"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required" example:"Seaside apartment refresh"`
	Description string   `json:"description" example:"Two-bedroom apartment, full redesign"`
	Budget      *float64 `json:"budget" example:"15000"`
	Deadline    string   `json:"deadline" example:"2026-03-01"`
}

type GenerateDesignRequest struct {
	ProjectID string   `json:"project_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	RoomType  string   `json:"room_type" binding:"required" example:"living room"`
	Style     string   `json:"style" binding:"required" example:"scandinavian"`
	Budget    *float64 `json:"budget" example:"2000"`
	Keywords  string   `json:"keywords" example:"wooden floor, large windows"`
}

type GenerateMarketingRequest struct {
	ProjectID   string `json:"project_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	ContentType string `json:"content_type" binding:"required" example:"social media post"`
	Platform    string `json:"platform" binding:"required" example:"instagram"`
}
