package repository

import (
	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/models"
)

// GormTopicRepository is a GORM implementation of TopicRepository
type GormTopicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new TopicRepository
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &GormTopicRepository{db: db}
}

func (r *GormTopicRepository) Create(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

func (r *GormTopicRepository) FindByID(id string) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.First(&topic, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *GormTopicRepository) FindByIDUnscoped(id string) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.Unscoped().First(&topic, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *GormTopicRepository) List() ([]models.Topic, error) {
	var topics []models.Topic
	if err := r.db.Order("name ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *GormTopicRepository) Update(id string, mutate func(*models.Topic) error) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&topic, "id = ?", id).Error; err != nil {
			return err
		}
		if err := mutate(&topic); err != nil {
			return err
		}
		return tx.Save(&topic).Error
	})
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *GormTopicRepository) SoftDelete(id string) error {
	return r.db.Delete(&models.Topic{}, "id = ?", id).Error
}
