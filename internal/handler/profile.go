package handler

import (
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/middleware"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GET /me/profile
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.profileService.GetByUserID(middleware.GetCurrentUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, profile)
}

// PATCH /me/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req struct {
		FullName       *string   `json:"full_name"`
		Phone          *string   `json:"phone"`
		Gender         *string   `json:"gender"`
		AgeYears       *uint     `json:"age_years"`
		Region         *string   `json:"region"`
		City           *string   `json:"city"`
		EducationLevel *string   `json:"education_level"`
		Institution    *string   `json:"institution"`
		Major          *string   `json:"major"`
		Bio            *string   `json:"bio"`
		AvailableDays  *[]string `json:"available_days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.AgeYears != nil {
		updates["age_years"] = *req.AgeYears
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.EducationLevel != nil {
		updates["education_level"] = *req.EducationLevel
	}
	if req.Institution != nil {
		updates["institution"] = *req.Institution
	}
	if req.Major != nil {
		updates["major"] = *req.Major
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.AvailableDays != nil {
		updates["available_days"] = datatypes.NewJSONSlice(*req.AvailableDays)
	}
	if len(updates) == 0 {
		BadRequest(c, 40001, "no fields to update")
		return
	}

	profile, err := h.profileService.Update(middleware.GetCurrentUserID(c), updates)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, profile)
}

// PUT /me/profile/skills
func (h *ProfileHandler) SetSkills(c *gin.Context) {
	var req struct {
		SkillIDs []uint `json:"skill_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	skills, err := h.profileService.SetSkills(middleware.GetCurrentUserID(c), req.SkillIDs)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, skills)
}

// PUT /me/profile/interests
func (h *ProfileHandler) SetInterests(c *gin.Context) {
	var req struct {
		InterestIDs []uint `json:"interest_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	interests, err := h.profileService.SetInterests(middleware.GetCurrentUserID(c), req.InterestIDs)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, interests)
}

// GET /lookups/skills
func (h *ProfileHandler) ListSkills(c *gin.Context) {
	skills, err := h.profileService.ListSkills()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, skills)
}

// GET /lookups/interests
func (h *ProfileHandler) ListInterests(c *gin.Context) {
	interests, err := h.profileService.ListInterests()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, interests)
}
