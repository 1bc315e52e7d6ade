package handler

import (
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/middleware"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ProgramAdminHandler serves the manager-facing program operations. Every
// route first resolves the program's kind and checks the caller may manage
// that kind.
type ProgramAdminHandler struct {
	programService *service.ProgramService
}

func NewProgramAdminHandler(programService *service.ProgramService) *ProgramAdminHandler {
	return &ProgramAdminHandler{programService: programService}
}

func (h *ProgramAdminHandler) managed(c *gin.Context) (*model.Program, bool) {
	program, err := h.programService.GetByID(parseID(c.Param("id")))
	if err != nil {
		ServiceError(c, err)
		return nil, false
	}
	if !middleware.CanManageKind(c, program.Kind) {
		Forbidden(c, 40301, "insufficient role for this program kind")
		return nil, false
	}
	return program, true
}

// GET /admin/programs
func (h *ProgramAdminHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	kind := c.DefaultQuery("kind", model.KindService)
	if !middleware.CanManageKind(c, kind) {
		Forbidden(c, 40301, "insufficient role for this program kind")
		return
	}

	programs, total, err := h.programService.AdminList(kind, c.Query("status"), page, pageSize)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]gin.H, 0, len(programs))
	for i := range programs {
		list = append(list, programCard(&programs[i]))
	}
	SuccessPaged(c, list, total, page, pageSize)
}

// POST /admin/programs
func (h *ProgramAdminHandler) Create(c *gin.Context) {
	var req struct {
		Kind                string `json:"kind" binding:"omitempty,oneof=service project"`
		Name                string `json:"name" binding:"required"`
		ShortSummary        string `json:"short_summary"`
		Description         string `json:"description"`
		ServiceCategory     string `json:"service_category" binding:"omitempty,oneof=essential community complementary"`
		Region              string `json:"region"`
		City                string `json:"city"`
		ScheduledDate       string `json:"scheduled_date"`
		SponsorName         string `json:"sponsor_name"`
		AllowVolunteers     *bool  `json:"allow_volunteers"`
		VolunteersRequired  uint   `json:"volunteers_required"`
		AllowDonations      *bool  `json:"allow_donations"`
		TargetUnitsLabel    string `json:"target_units_label"`
		TargetUnits         uint   `json:"target_units"`
		TargetBeneficiaries uint   `json:"target_beneficiaries"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = model.KindService
	}
	if !middleware.CanManageKind(c, kind) {
		Forbidden(c, 40301, "insufficient role for this program kind")
		return
	}

	program := &model.Program{
		Kind:                kind,
		Name:                req.Name,
		ShortSummary:        req.ShortSummary,
		Description:         req.Description,
		ServiceCategory:     req.ServiceCategory,
		Region:              req.Region,
		City:                req.City,
		ScheduledDate:       parseDate(req.ScheduledDate),
		SponsorName:         req.SponsorName,
		VolunteersRequired:  req.VolunteersRequired,
		TargetUnitsLabel:    req.TargetUnitsLabel,
		TargetUnits:         req.TargetUnits,
		TargetBeneficiaries: req.TargetBeneficiaries,
		AllowVolunteers:     true,
		AllowDonations:      true,
	}
	if req.AllowVolunteers != nil {
		program.AllowVolunteers = *req.AllowVolunteers
	}
	if req.AllowDonations != nil {
		program.AllowDonations = *req.AllowDonations
	}

	if err := h.programService.Create(program); err != nil {
		ServiceError(c, err)
		return
	}
	Created(c, programCard(program))
}

// PATCH /admin/programs/:id
func (h *ProgramAdminHandler) Update(c *gin.Context) {
	program, ok := h.managed(c)
	if !ok {
		return
	}

	var req struct {
		Name                *string `json:"name"`
		ShortSummary        *string `json:"short_summary"`
		Description         *string `json:"description"`
		ServiceCategory     *string `json:"service_category"`
		Region              *string `json:"region"`
		City                *string `json:"city"`
		ScheduledDate       *string `json:"scheduled_date"`
		SponsorName         *string `json:"sponsor_name"`
		AllowVolunteers     *bool   `json:"allow_volunteers"`
		VolunteersRequired  *uint   `json:"volunteers_required"`
		AllowDonations      *bool   `json:"allow_donations"`
		TargetUnitsLabel    *string `json:"target_units_label"`
		TargetUnits         *uint   `json:"target_units"`
		TargetBeneficiaries *uint   `json:"target_beneficiaries"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ShortSummary != nil {
		updates["short_summary"] = *req.ShortSummary
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ServiceCategory != nil {
		updates["service_category"] = *req.ServiceCategory
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.ScheduledDate != nil {
		updates["scheduled_date"] = parseDate(*req.ScheduledDate)
	}
	if req.SponsorName != nil {
		updates["sponsor_name"] = *req.SponsorName
	}
	if req.AllowVolunteers != nil {
		updates["allow_volunteers"] = *req.AllowVolunteers
	}
	if req.VolunteersRequired != nil {
		updates["volunteers_required"] = *req.VolunteersRequired
	}
	if req.AllowDonations != nil {
		updates["allow_donations"] = *req.AllowDonations
	}
	if req.TargetUnitsLabel != nil {
		updates["target_units_label"] = *req.TargetUnitsLabel
	}
	if req.TargetUnits != nil {
		updates["target_units"] = *req.TargetUnits
	}
	if req.TargetBeneficiaries != nil {
		updates["target_beneficiaries"] = *req.TargetBeneficiaries
	}
	if len(updates) == 0 {
		BadRequest(c, 40001, "no fields to update")
		return
	}

	updated, err := h.programService.Update(program.ID, updates)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, programCard(updated))
}

// POST /admin/programs/:id/publish
func (h *ProgramAdminHandler) Publish(c *gin.Context) {
	program, ok := h.managed(c)
	if !ok {
		return
	}
	updated, err := h.programService.Publish(program.ID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"ok":        true,
		"id":        updated.ID,
		"status":    updated.Status,
		"is_active": updated.IsActive,
	})
}

// POST /admin/programs/:id/unpublish
func (h *ProgramAdminHandler) Unpublish(c *gin.Context) {
	program, ok := h.managed(c)
	if !ok {
		return
	}
	updated, err := h.programService.Unpublish(program.ID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"ok":        true,
		"id":        updated.ID,
		"status":    updated.Status,
		"is_active": updated.IsActive,
	})
}

// POST /admin/programs/:id/mark_done
func (h *ProgramAdminHandler) MarkDone(c *gin.Context) {
	program, ok := h.managed(c)
	if !ok {
		return
	}
	updated, err := h.programService.MarkDone(program.ID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"ok":        true,
		"id":        updated.ID,
		"status":    updated.Status,
		"is_active": updated.IsActive,
	})
}
