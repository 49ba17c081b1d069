package domain

import (
	"time"
)

type Account struct {
	ID                 string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name               string    `gorm:"type:text;not null" json:"name"`
	Email              string    `gorm:"type:text;not null;unique" json:"email"`
	PlanTier           string    `gorm:"type:text;not null;default:'free'" json:"plan_tier"`
	AIGenerationsUsed  int       `gorm:"not null;default:0" json:"ai_generations_used"`
	AIGenerationsLimit int       `gorm:"not null;default:5" json:"ai_generations_limit"`
	CreatedAt          time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// Tier returns the account's plan tier as a typed value
func (a *Account) Tier() PlanTier {
	return PlanTier(a.PlanTier)
}

// QuotaRemaining reports how many AI generations the account has left.
// A negative limit means unlimited, matching the guard used when charging.
func (a *Account) QuotaRemaining() int {
	if a.AIGenerationsLimit < 0 {
		return Unlimited
	}
	remaining := a.AIGenerationsLimit - a.AIGenerationsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
