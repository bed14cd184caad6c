package dto

import "github.com/mshiina/course-catalog-api/internal/models"

// TopicDTO represents a topic in API responses
type TopicDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id,omitempty"`
}

// ToTopicDTO converts a Topic model to TopicDTO
func ToTopicDTO(topic models.Topic) TopicDTO {
	return TopicDTO{
		ID:          topic.ID,
		Name:        topic.Name,
		Description: topic.Description,
		ParentID:    topic.ParentID,
	}
}

// ToTopicDTOs converts a slice of Topic models to DTOs
func ToTopicDTOs(topics []models.Topic) []TopicDTO {
	dtos := make([]TopicDTO, len(topics))
	for i, topic := range topics {
		dtos[i] = ToTopicDTO(topic)
	}
	return dtos
}
