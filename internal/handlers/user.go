package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mshiina/course-catalog-api/internal/dto"
	"github.com/mshiina/course-catalog-api/internal/response"
	"github.com/mshiina/course-catalog-api/internal/services"
	"github.com/mshiina/course-catalog-api/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers returns all live users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, _, err := h.userService.List(params)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", dto.ToUserDTOs(users))
}

// GetUser returns a single live user by id.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("id"))
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", dto.ToUserDTO(*user))
}

type updateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUser replaces a user's name, email, and password.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Update(c.Param("id"), services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	response.OK(c, "User updated successfully", gin.H{"id": user.ID})
}

// DeleteUser soft-deletes a user.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.SoftDelete(c.Param("id")); err != nil {
		h.respondUserError(c, err)
		return
	}

	response.OK(c, "User deleted successfully", nil)
}

func (h *UserHandler) respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, services.ErrUserAlreadyDeleted):
		response.Conflict(c, "User already deleted")
	case errors.Is(err, services.ErrPasswordTooShort):
		response.BadRequest(c, "Password must be at least 8 characters")
	case errors.Is(err, services.ErrEmailTaken):
		response.BadRequest(c, "Email already registered")
	default:
		h.logger.Error("user operation failed", zap.Error(err))
		response.InternalError(c)
	}
}
