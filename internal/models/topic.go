package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic is a node in the topic tree. Parent/child relationships are kept as
// plain id references and resolved through lookups, never as embedded object
// graphs.
type Topic struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(150);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	ParentID    *string        `gorm:"type:varchar(36);index" json:"parent_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Courses []Course `gorm:"foreignKey:TopicID" json:"-"`
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
