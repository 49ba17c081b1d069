package domain

import (
	"encoding/json"
	"time"
)

type ActivityAction string

const (
	ActivityDesignGenerated   ActivityAction = "design_generated"
	ActivityDesignDeleted     ActivityAction = "design_deleted"
	ActivityProjectCreated    ActivityAction = "project_created"
	ActivityProjectDeleted    ActivityAction = "project_deleted"
	ActivityMarketingDrafted  ActivityAction = "marketing_drafted"
	ActivityInsightsGenerated ActivityAction = "insights_generated"
)

// Activity records one account-visible event (generation, deletion, ...).
type Activity struct {
	ID           string          `gorm:"primaryKey;type:uuid" json:"id"`
	AccountID    string          `gorm:"type:uuid;not null" json:"account_id"`
	Action       string          `gorm:"type:text;not null" json:"action"`
	ResourceType string          `gorm:"type:text" json:"resource_type"`
	ResourceID   string          `gorm:"type:text" json:"resource_id"`
	Metadata     json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt    time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Account      *Account        `gorm:"foreignKey:AccountID" json:"-"`
}

func (Activity) TableName() string {
	return "activities"
}

type ActivityFilter struct {
	AccountID    string    `json:"account_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Page         int       `json:"page"`
	PageSize     int       `json:"page_size"`
	Limit        int       `json:"limit"`
	Offset       int       `json:"offset"`
}
