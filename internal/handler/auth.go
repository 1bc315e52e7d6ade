package handler

import (
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/middleware"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		FullName       string   `json:"full_name" binding:"required"`
		Email          string   `json:"email" binding:"required,email"`
		Phone          string   `json:"phone" binding:"required"`
		Password       string   `json:"password" binding:"required,min=8"`
		NationalID     string   `json:"national_id" binding:"required"`
		Gender         string   `json:"gender" binding:"required,oneof=male female"`
		Age            uint     `json:"age" binding:"required,min=1"`
		Region         string   `json:"region"`
		City           string   `json:"city"`
		EducationLevel string   `json:"education_level"`
		AvailableDays  []string `json:"available_days"`
		Skills         []string `json:"skills"`
		Interests      []string `json:"interests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	user, err := h.authService.Register(service.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		NationalID:     req.NationalID,
		Gender:         req.Gender,
		Age:            req.Age,
		Region:         req.Region,
		City:           req.City,
		EducationLevel: req.EducationLevel,
		AvailableDays:  req.AvailableDays,
		Skills:         req.Skills,
		Interests:      req.Interests,
	})
	if err != nil {
		ServiceError(c, err)
		return
	}

	access, refresh, err := h.authService.IssueTokens(user)
	if err != nil {
		InternalError(c, "failed to issue tokens")
		return
	}
	Created(c, gin.H{
		"user":    user.Brief(),
		"access":  access,
		"refresh": refresh,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		ServiceError(c, err)
		return
	}

	access, refresh, err := h.authService.IssueTokens(user)
	if err != nil {
		InternalError(c, "failed to issue tokens")
		return
	}
	Success(c, gin.H{
		"user":    user.Brief(),
		"access":  access,
		"refresh": refresh,
	})
}

// POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	access, refresh, err := h.authService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"access":  access,
		"refresh": refresh,
	})
}

// POST /auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	if err := h.authService.Verify(req.Token); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"valid": true})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.Refresh); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"ok": true})
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetCurrentUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, user)
}
