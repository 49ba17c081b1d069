package dto

import (
	"encoding/json"
	"time"
)

// AccountResponse represents an account with its current generation quota
type AccountResponse struct {
	ID                 string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name               string    `json:"name" example:"Nordic Interiors"`
	Email              string    `json:"email" example:"studio@nordic-interiors.com"`
	PlanTier           string    `json:"plan_tier" example:"free"`
	AIGenerationsUsed  int       `json:"ai_generations_used" example:"4"`
	AIGenerationsLimit int       `json:"ai_generations_limit" example:"5"`
	CreatedAt          time.Time `json:"created_at" example:"2026-07-17T21:20:48Z"`
	UpdatedAt          time.Time `json:"updated_at" example:"2026-07-17T21:20:48Z"`
}

// ProjectResponse represents a single project in the response
type ProjectResponse struct {
	ID          string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	AccountID   string     `json:"account_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title       string     `json:"title" example:"Seaside apartment refresh"`
	Description string     `json:"description,omitempty" example:"Two-bedroom apartment, full redesign"`
	Status      string     `json:"status" example:"active"`
	Budget      *float64   `json:"budget,omitempty" example:"15000"`
	Spent       float64    `json:"spent" example:"4200"`
	Deadline    *time.Time `json:"deadline,omitempty" example:"2026-03-01T00:00:00Z"`
	CreatedAt   time.Time  `json:"created_at" example:"2026-07-17T21:20:48Z"`
	UpdatedAt   time.Time  `json:"updated_at" example:"2026-07-17T21:20:48Z"`
}

// DesignResponse represents one generated design concept. List fields keep
// the order the provider produced.
type DesignResponse struct {
	ID           string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ProjectID    string    `json:"project_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	AccountID    string    `json:"account_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	RoomType     string    `json:"room_type" example:"living room"`
	Style        string    `json:"style" example:"scandinavian"`
	Budget       *float64  `json:"budget,omitempty" example:"2000"`
	Keywords     string    `json:"keywords,omitempty" example:"wooden floor, large windows"`
	ImageURLs    []string  `json:"image_urls"`
	ColorPalette []string  `json:"color_palette" example:"#F5F1EA,#D8CFC0"`
	Description  string    `json:"description" example:"A bright, airy living room..."`
	ProductList  []string  `json:"product_list"`
	CreatedAt    time.Time `json:"created_at" example:"2026-07-17T21:20:48Z"`
}

// MarketingContentResponse carries a generated marketing draft
type MarketingContentResponse struct {
	ProjectID   string `json:"project_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ContentType string `json:"content_type" example:"social media post"`
	Platform    string `json:"platform" example:"instagram"`
	Content     string `json:"content" example:"Step inside our latest seaside refresh..."`
}

// ProjectInsightsResponse carries a generated project analysis
type ProjectInsightsResponse struct {
	ProjectID string `json:"project_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Insights  string `json:"insights" example:"Budget health: on track..."`
}

// ActivityResponse represents one entry of the account activity feed
type ActivityResponse struct {
	ID           string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	AccountID    string          `json:"account_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Action       string          `json:"action" example:"design_generated"`
	ResourceType string          `json:"resource_type" example:"design"`
	ResourceID   string          `json:"resource_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Metadata     json.RawMessage `json:"metadata,omitempty" swaggertype:"string" example:"{\\\"room_type\\\":\\\"living room\\\"}"`
	CreatedAt    time.Time       `json:"created_at" example:"2026-07-17T21:20:48Z"`
}
