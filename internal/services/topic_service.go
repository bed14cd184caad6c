package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/models"
	"github.com/mshiina/course-catalog-api/internal/repository"
)

var (
	ErrTopicNotFound       = errors.New("topic not found")
	ErrTopicAlreadyDeleted = errors.New("topic already deleted")
	ErrTopicNameRequired   = errors.New("topic name cannot be empty")
	ErrTopicParentNotFound = errors.New("parent topic not found or deleted")
	ErrTopicCycle          = errors.New("topic cannot be its own ancestor")
)

// TopicService provides lifecycle operations for the topic tree.
type TopicService struct {
	topicRepo repository.TopicRepository
}

// NewTopicService creates a new TopicService.
func NewTopicService(topicRepo repository.TopicRepository) *TopicService {
	return &TopicService{
		topicRepo: topicRepo,
	}
}

// List returns all live topics.
func (s *TopicService) List() ([]models.Topic, error) {
	topics, err := s.topicRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

// GetByID returns a live topic.
func (s *TopicService) GetByID(id string) (*models.Topic, error) {
	topic, err := s.topicRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to find topic: %w", err)
	}
	return topic, nil
}

// CreateTopicInput represents input for creating a topic.
type CreateTopicInput struct {
	Name        string
	Description string
	ParentID    *string
}

// Create creates a new topic. A parent, when given, must reference a live
// topic; a brand-new node cannot close a cycle so no ancestor walk is needed.
func (s *TopicService) Create(input CreateTopicInput) (*models.Topic, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTopicNameRequired
	}

	if input.ParentID != nil {
		if _, err := s.topicRepo.FindByID(*input.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTopicParentNotFound
			}
			return nil, fmt.Errorf("failed to verify parent topic: %w", err)
		}
	}

	topic := &models.Topic{
		Name:        name,
		Description: input.Description,
		ParentID:    input.ParentID,
	}
	if err := s.topicRepo.Create(topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	return topic, nil
}

// UpdateTopicInput represents input for updating a topic.
type UpdateTopicInput struct {
	Name        string
	Description string
	ParentID    *string
}

// Update replaces a live topic's fields. Re-parenting re-validates the parent
// reference and rejects any assignment that would make the topic its own
// ancestor.
func (s *TopicService) Update(id string, input UpdateTopicInput) (*models.Topic, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTopicNameRequired
	}

	if input.ParentID != nil {
		if err := s.ensureNoCycle(id, *input.ParentID); err != nil {
			return nil, err
		}
	}

	topic, err := s.topicRepo.Update(id, func(t *models.Topic) error {
		t.Name = name
		t.Description = input.Description
		t.ParentID = input.ParentID
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}

	return topic, nil
}

// SoftDelete marks a topic as deleted. Child topics and courses keep their
// references; the subtree is not cascaded.
func (s *TopicService) SoftDelete(id string) error {
	topic, err := s.topicRepo.FindByIDUnscoped(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTopicNotFound
		}
		return fmt.Errorf("failed to find topic: %w", err)
	}

	if topic.DeletedAt.Valid {
		return ErrTopicAlreadyDeleted
	}

	if err := s.topicRepo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}

	return nil
}

// ensureNoCycle verifies that parentID references a live topic and that
// following parent links from it never reaches id. The walk resolves each hop
// by id lookup; a chain broken by a soft-deleted ancestor terminates the walk.
func (s *TopicService) ensureNoCycle(id, parentID string) error {
	visited := map[string]struct{}{}
	current := parentID
	for {
		if current == id {
			return ErrTopicCycle
		}
		if _, seen := visited[current]; seen {
			// Pre-existing cycle among other topics; it does not involve id,
			// and walking further would never terminate.
			return nil
		}
		visited[current] = struct{}{}

		topic, err := s.topicRepo.FindByID(current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if current == parentID {
					return ErrTopicParentNotFound
				}
				return nil
			}
			return fmt.Errorf("failed to verify parent topic: %w", err)
		}

		if topic.ParentID == nil {
			return nil
		}
		current = *topic.ParentID
	}
}
