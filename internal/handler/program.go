package handler

import (
	"time"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	programService *service.ProgramService
}

func NewProgramHandler(programService *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

func programCard(p *model.Program) gin.H {
	return gin.H{
		"id":                   p.ID,
		"kind":                 p.Kind,
		"name":                 p.Name,
		"short_summary":        p.ShortSummary,
		"status":               p.Status,
		"is_active":            p.IsActive,
		"service_category":     p.ServiceCategory,
		"region":               p.Region,
		"city":                 p.City,
		"scheduled_date":       p.ScheduledDate,
		"sponsor_name":         p.SponsorName,
		"allow_volunteers":     p.AllowVolunteers,
		"volunteers_required":  p.VolunteersRequired,
		"volunteers_committed": p.VolunteersCommitted,
		"progress_volunteers":  p.ProgressVolunteers(),
		"allow_donations":      p.AllowDonations,
	}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// GET /programs
func (h *ProgramHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)

	f := service.CatalogFilter{
		Kind:     c.Query("kind"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Region:   c.Query("region"),
		City:     c.Query("city"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		DateFrom: parseDate(c.Query("date_from")),
		DateTo:   parseDate(c.Query("date_to")),
	}
	if s := c.Query("is_active"); s != "" {
		v := s == "true" || s == "1"
		f.IsActive = &v
	}

	programs, total, err := h.programService.List(f, page, pageSize)
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

// GET /programs/:id
func (h *ProgramHandler) Detail(c *gin.Context) {
	program, err := h.programService.GetByID(parseID(c.Param("id")))
	if err != nil {
		ServiceError(c, err)
		return
	}

	card := programCard(program)
	card["description"] = program.Description
	card["target_units_label"] = program.TargetUnitsLabel
	card["target_units"] = program.TargetUnits
	card["target_beneficiaries"] = program.TargetBeneficiaries
	card["audiences"] = program.Audiences
	card["requirements"] = program.Requirements
	card["created_at"] = program.CreatedAt
	Success(c, card)
}
