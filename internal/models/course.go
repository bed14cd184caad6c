package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "BEGINNER"
	CourseLevelIntermediate CourseLevel = "INTERMEDIATE"
	CourseLevelAdvanced     CourseLevel = "ADVANCED"
)

// Valid reports whether the level is one of the known course levels.
func (l CourseLevel) Valid() bool {
	switch l {
	case CourseLevelBeginner, CourseLevelIntermediate, CourseLevelAdvanced:
		return true
	}
	return false
}

type Course struct {
	ID               string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title            string         `gorm:"type:varchar(200);not null" json:"title"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	Price            float64        `gorm:"type:decimal(18,2);not null" json:"price"`
	DiscountRate     float64        `gorm:"type:decimal(5,2);not null;default:0" json:"discount_rate"`
	Level            CourseLevel    `gorm:"type:varchar(20);not null" json:"level"`
	ShortDescription string         `gorm:"type:varchar(500)" json:"short_description"`
	ThumbnailURL     string         `gorm:"type:varchar(500)" json:"thumbnail_url"`
	LanguageID       string         `gorm:"type:varchar(36);not null;index" json:"language_id"`
	TopicID          string         `gorm:"type:varchar(36);not null;index" json:"topic_id"`
	CreatedByID      string         `gorm:"type:varchar(36);not null;index" json:"created_by_id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations, loaded only through explicit Preload. A course keeps its
	// language/topic/creator ids even after those rows are soft-deleted, so a
	// preload can come back empty for historical courses.
	Language  Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Topic     Topic    `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	CreatedBy User     `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
