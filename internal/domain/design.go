package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is an ordered list of strings stored as a JSONB array.
// Order is significant: image URLs, palette colors and product descriptors
// are displayed in the order the provider returned them.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as an empty array so
// reads never have to deal with SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner and validates that the stored value is a JSON
// array of strings.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("stored value is not a JSON string array: %w", err)
	}

	*l = StringList(items)
	return nil
}

// Design is the persisted output of one successful AI design generation.
// It is immutable after creation and cascade-deleted with its project.
type Design struct {
	ID           string     `gorm:"primaryKey;type:uuid" json:"id"`
	ProjectID    string     `gorm:"type:uuid;not null" json:"project_id"`
	AccountID    string     `gorm:"type:uuid;not null" json:"account_id"`
	RoomType     string     `gorm:"type:text;not null" json:"room_type"`
	Style        string     `gorm:"type:text;not null" json:"style"`
	Budget       *float64   `gorm:"type:numeric" json:"budget,omitempty"`
	Keywords     string     `gorm:"type:text" json:"keywords,omitempty"`
	ImageURLs    StringList `gorm:"type:jsonb;not null;default:'[]'" json:"image_urls"`
	ColorPalette StringList `gorm:"type:jsonb;not null;default:'[]'" json:"color_palette"`
	Description  string     `gorm:"type:text" json:"description"`
	ProductList  StringList `gorm:"type:jsonb;not null;default:'[]'" json:"product_list"`
	CreatedAt    time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Project      *Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Account      *Account   `gorm:"foreignKey:AccountID" json:"-"`
}

func (Design) TableName() string {
	return "designs"
}

type DesignFilter struct {
	AccountID string    `json:"account_id"`
	ProjectID string    `json:"project_id"`
	RoomType  string    `json:"room_type"`
	Style     string    `json:"style"`
	Query     string    `json:"query"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	Limit     int       `json:"limit"`
	Offset    int       `json:"offset"`
}
