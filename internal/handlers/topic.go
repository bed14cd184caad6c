package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mshiina/course-catalog-api/internal/dto"
	"github.com/mshiina/course-catalog-api/internal/response"
	"github.com/mshiina/course-catalog-api/internal/services"
)

type TopicHandler struct {
	topicService *services.TopicService
	logger       *zap.Logger
}

func NewTopicHandler(topicService *services.TopicService, logger *zap.Logger) *TopicHandler {
	return &TopicHandler{
		topicService: topicService,
		logger:       logger,
	}
}

// ListTopics returns all live topics.
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.topicService.List()
	if err != nil {
		h.respondTopicError(c, err)
		return
	}

	response.OK(c, "Topics retrieved successfully", dto.ToTopicDTOs(topics))
}

// GetTopic returns a single live topic by id.
func (h *TopicHandler) GetTopic(c *gin.Context) {
	topic, err := h.topicService.GetByID(c.Param("id"))
	if err != nil {
		h.respondTopicError(c, err)
		return
	}

	response.OK(c, "Topic retrieved successfully", dto.ToTopicDTO(*topic))
}

type topicRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
}

// CreateTopic creates a new topic, optionally under a parent.
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req topicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	topic, err := h.topicService.Create(services.CreateTopicInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		h.respondTopicError(c, err)
		return
	}

	response.Created(c, "Topic created successfully", dto.ToTopicDTO(*topic))
}

// UpdateTopic replaces a topic's fields, re-validating any new parent.
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	var req topicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	topic, err := h.topicService.Update(c.Param("id"), services.UpdateTopicInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		h.respondTopicError(c, err)
		return
	}

	response.OK(c, "Topic updated successfully", dto.ToTopicDTO(*topic))
}

// DeleteTopic soft-deletes a topic.
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	if err := h.topicService.SoftDelete(c.Param("id")); err != nil {
		h.respondTopicError(c, err)
		return
	}

	response.OK(c, "Topic deleted successfully", nil)
}

func (h *TopicHandler) respondTopicError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTopicNotFound):
		response.NotFound(c, "Topic not found")
	case errors.Is(err, services.ErrTopicAlreadyDeleted):
		response.Conflict(c, "Topic already deleted")
	case errors.Is(err, services.ErrTopicNameRequired):
		response.BadRequest(c, "Topic name cannot be empty")
	case errors.Is(err, services.ErrTopicParentNotFound):
		response.BadRequest(c, "Parent topic not found or deleted")
	case errors.Is(err, services.ErrTopicCycle):
		response.BadRequest(c, "Topic cannot be its own ancestor")
	default:
		h.logger.Error("topic operation failed", zap.Error(err))
		response.InternalError(c)
	}
}
