package handler

import (
	"time"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/middleware"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ApplicationAdminHandler serves the manager-facing application pipeline.
// Transitions are gated by the application's program kind: service programs
// need a service manager, projects a project manager (admins bypass).
type ApplicationAdminHandler struct {
	applicationService *service.ApplicationService
	taskService        *service.TaskService
}

func NewApplicationAdminHandler(applicationService *service.ApplicationService, taskService *service.TaskService) *ApplicationAdminHandler {
	return &ApplicationAdminHandler{
		applicationService: applicationService,
		taskService:        taskService,
	}
}

func (h *ApplicationAdminHandler) managed(c *gin.Context) (*model.VolunteerApplication, bool) {
	app, err := h.applicationService.GetWithProgram(parseID(c.Param("id")))
	if err != nil {
		ServiceError(c, err)
		return nil, false
	}
	if app.Program == nil || !middleware.CanManageKind(c, app.Program.Kind) {
		Forbidden(c, 40301, "insufficient role for this program kind")
		return nil, false
	}
	return app, true
}

// GET /admin/applications
func (h *ApplicationAdminHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)

	var programID *uint
	if s := c.Query("program_id"); s != "" {
		v := parseID(s)
		programID = &v
	}

	apps, total, err := h.applicationService.AdminList(c.Query("status"), programID, page, pageSize)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]gin.H, 0, len(apps))
	for i := range apps {
		view := applicationView(&apps[i])
		view["profile_snapshot"] = apps[i].ProfileSnapshot
		list = append(list, view)
	}
	SuccessPaged(c, list, total, page, pageSize)
}

// POST /admin/applications/:id/approve
func (h *ApplicationAdminHandler) Approve(c *gin.Context) {
	app, ok := h.managed(c)
	if !ok {
		return
	}
	if err := h.applicationService.Approve(app); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"ok":     true,
		"id":     app.ID,
		"status": app.Status,
	})
}

// POST /admin/applications/:id/reject
func (h *ApplicationAdminHandler) Reject(c *gin.Context) {
	app, ok := h.managed(c)
	if !ok {
		return
	}
	if err := h.applicationService.Reject(app); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"ok":     true,
		"id":     app.ID,
		"status": app.Status,
	})
}

// POST /admin/applications/:id/tasks
func (h *ApplicationAdminHandler) CreateTask(c *gin.Context) {
	app, ok := h.managed(c)
	if !ok {
		return
	}

	var req struct {
		Title          string `json:"title" binding:"required"`
		Description    string `json:"description"`
		PlannedHours   uint   `json:"planned_hours"`
		DueDate        string `json:"due_date"`
		LocationCity   string `json:"location_city"`
		LocationRegion string `json:"location_region"`
		Order          uint   `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	var due *time.Time
	if req.DueDate != "" {
		t, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			BadRequest(c, 40001, "invalid due_date, expected YYYY-MM-DD")
			return
		}
		due = &t
	}

	task := &model.VolunteerTask{
		ApplicationID:  app.ID,
		Title:          req.Title,
		Description:    req.Description,
		PlannedHours:   req.PlannedHours,
		DueDate:        due,
		LocationCity:   req.LocationCity,
		LocationRegion: req.LocationRegion,
		Order:          req.Order,
	}
	if err := h.taskService.CreateTask(task); err != nil {
		ServiceError(c, err)
		return
	}
	Created(c, task)
}

// POST /admin/tasks/:id/items
func (h *ApplicationAdminHandler) CreateTaskItem(c *gin.Context) {
	var req struct {
		Text  string `json:"text" binding:"required"`
		Order uint   `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	item := &model.VolunteerTaskItem{
		TaskID: parseID(c.Param("id")),
		Text:   req.Text,
		Order:  req.Order,
	}
	if err := h.taskService.CreateItem(item); err != nil {
		ServiceError(c, err)
		return
	}
	Created(c, item)
}
