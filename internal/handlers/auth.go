package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mshiina/course-catalog-api/internal/response"
	"github.com/mshiina/course-catalog-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account with the USER role.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	response.OK(c, "User registered successfully", nil)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{"token": token})
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		response.BadRequest(c, "Email already registered")
	case errors.Is(err, services.ErrNameRequired):
		response.BadRequest(c, "Name is required")
	case errors.Is(err, services.ErrNameTooLong):
		response.BadRequest(c, "Name too long")
	case errors.Is(err, services.ErrPasswordTooShort):
		response.BadRequest(c, "Password must be at least 8 characters")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, services.ErrAccountDeactivated):
		response.Unauthorized(c, "This account has been deactivated")
	default:
		h.logger.Error("auth operation failed", zap.Error(err))
		response.InternalError(c)
	}
}
