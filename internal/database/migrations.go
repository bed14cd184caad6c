package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/models"
)

// AddIndexes adds query-path indexes that AutoMigrate's tag-driven indexes do
// not cover.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		name    string
		table   string
		columns string
	}{
		// Course list filters and joined lookups
		{&models.Course{}, "idx_courses_level", "courses", "level"},
		{&models.Course{}, "idx_courses_created_at", "courses", "created_at"},

		// User listing order
		{&models.User{}, "idx_users_created_at", "users", "created_at"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}
		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
