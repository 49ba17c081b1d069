package domain

import (
	"time"
)

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
)

type Project struct {
	ID          string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	AccountID   string     `gorm:"type:uuid;not null" json:"account_id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"type:text;not null;default:'planning'" json:"status"`
	Budget      *float64   `gorm:"type:numeric" json:"budget,omitempty"`
	Spent       float64    `gorm:"type:numeric;not null;default:0" json:"spent"`
	Deadline    *time.Time `gorm:"type:timestamp with time zone" json:"deadline,omitempty"`
	CreatedAt   time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Account     *Account   `gorm:"foreignKey:AccountID" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}
