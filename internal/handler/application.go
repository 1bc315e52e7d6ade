package handler

import (
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/middleware"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationService *service.ApplicationService
}

func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func applicationView(a *model.VolunteerApplication) gin.H {
	view := gin.H{
		"id":             a.ID,
		"program_id":     a.ProgramID,
		"status":         a.Status,
		"applied_at":     a.AppliedAt,
		"approved_at":    a.ApprovedAt,
		"start_date":     a.StartDate,
		"due_date":       a.DueDate,
		"planned_hours":  a.PlannedHours,
		"actual_hours":   a.ActualHours,
		"org_rating":     a.OrgRating,
		"volunteer_note": a.VolunteerNote,
	}
	if a.Program != nil {
		view["program"] = gin.H{
			"id":             a.Program.ID,
			"kind":           a.Program.Kind,
			"name":           a.Program.Name,
			"status":         a.Program.Status,
			"scheduled_date": a.Program.ScheduledDate,
			"region":         a.Program.Region,
			"city":           a.Program.City,
		}
	}
	return view
}

// POST /programs/:id/apply
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, 40101, "authentication required")
		return
	}

	app, created, err := h.applicationService.Apply(c.Request.Context(), user, parseID(c.Param("id")))
	if err != nil {
		ServiceError(c, err)
		return
	}

	payload := gin.H{
		"id":         app.ID,
		"program_id": app.ProgramID,
		"status":     app.Status,
		"applied_at": app.AppliedAt,
		"created":    created,
	}
	if created {
		Created(c, payload)
		return
	}
	Success(c, payload)
}

// GET /me/applications
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationService.ListByUser(middleware.GetCurrentUserID(c), c.Query("status"))
	if err != nil {
		ServiceError(c, err)
		return
	}

	list := make([]gin.H, 0, len(apps))
	for i := range apps {
		list = append(list, applicationView(&apps[i]))
	}
	Success(c, list)
}

// POST /me/applications/:id/withdraw
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	app, err := h.applicationService.Withdraw(parseID(c.Param("id")), middleware.GetCurrentUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"ok":     true,
		"id":     app.ID,
		"status": app.Status,
	})
}

// PATCH /me/applications/:id/note
func (h *ApplicationHandler) UpdateNote(c *gin.Context) {
	var req struct {
		VolunteerNote string `json:"volunteer_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	app, err := h.applicationService.UpdateNote(parseID(c.Param("id")), middleware.GetCurrentUserID(c), req.VolunteerNote)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"id":             app.ID,
		"volunteer_note": app.VolunteerNote,
	})
}

// POST /me/applications/:id/log_hours
func (h *ApplicationHandler) LogHours(c *gin.Context) {
	var req struct {
		Hours uint `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	app, profile, err := h.applicationService.LogHours(parseID(c.Param("id")), middleware.GetCurrentUserID(c), req.Hours)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"id":           app.ID,
		"actual_hours": app.ActualHours,
		"total_hours":  profile.TotalHours,
	})
}
