package auth

import (
	"errors"
	"net/http"

	"campora/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller handles auth HTTP requests
type Controller struct {
	service Service
}

// NewController creates a new auth controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Register handles POST /auth/register
func (ctrl *Controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.RespondJSON(c, "error", http.StatusConflict, "Email already registered", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to register user", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "User registered successfully", result, nil)
}

// Login handles POST /auth/login
func (ctrl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Invalid email or password", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to login", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Login successful", result, nil)
}

// RefreshToken handles POST /auth/refresh
func (ctrl *Controller) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	tokens, err := ctrl.service.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Invalid or expired refresh token", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Token refreshed successfully", tokens, nil)
}

// Logout handles POST /auth/logout
func (ctrl *Controller) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	if err := ctrl.service.Logout(c.Request.Context(), &req); err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Invalid refresh token", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Logged out successfully", nil, nil)
}

// ChangePassword handles PUT /auth/change-password
func (ctrl *Controller) ChangePassword(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	if err := ctrl.service.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Current password is incorrect", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to change password", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Password changed successfully", nil, nil)
}

// Me handles GET /auth/me
func (ctrl *Controller) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := ctrl.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "User not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch profile", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile fetched successfully", profile, nil)
}
