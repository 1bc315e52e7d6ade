package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"gorm.io/gorm"
)

type ProgramService struct {
	db *gorm.DB
}

func NewProgramService(db *gorm.DB) *ProgramService {
	return &ProgramService{db: db}
}

// CatalogFilter captures the public catalog query parameters. Zero values
// fall back to the defaults: kind=service, active only, newest schedule first.
type CatalogFilter struct {
	Kind     string
	Status   string
	Category string
	Region   string
	City     string
	IsActive *bool
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
	Ordering string
}

// catalog ordering whitelist; a leading '-' requests descending order.
var orderingColumns = map[string]string{
	"scheduled_date": "scheduled_date",
	"name":           "name",
	"created_at":     "created_at",
}

func orderClause(ordering string) string {
	dir := "asc"
	col := ordering
	if strings.HasPrefix(ordering, "-") {
		dir = "desc"
		col = ordering[1:]
	}
	column, ok := orderingColumns[col]
	if !ok {
		return "scheduled_date desc"
	}
	return column + " " + dir
}

// List serves the public catalog: filterable, searchable, paginated cards.
func (s *ProgramService) List(f CatalogFilter, page, pageSize int) ([]model.Program, int64, error) {
	kind := f.Kind
	if kind == "" {
		kind = model.KindService
	}
	query := s.db.Model(&model.Program{}).Where("kind = ?", kind)

	if f.IsActive != nil {
		query = query.Where("is_active = ?", *f.IsActive)
	} else {
		query = query.Where("is_active = ?", true)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		query = query.Where("service_category = ?", f.Category)
	}
	if f.Region != "" {
		query = query.Where("region LIKE ?", "%"+f.Region+"%")
	}
	if f.City != "" {
		query = query.Where("city LIKE ?", "%"+f.City+"%")
	}
	if f.DateFrom != nil {
		query = query.Where("scheduled_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		query = query.Where("scheduled_date <= ?", *f.DateTo)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("name LIKE ? OR short_summary LIKE ? OR description LIKE ?", like, like, like)
	}

	var total int64
	query.Count(&total)

	var programs []model.Program
	err := query.Order(orderClause(f.Ordering)).
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&programs).Error
	if err != nil {
		return nil, 0, err
	}
	return programs, total, nil
}

// GetByID returns the full detail with ordered requirements and audiences.
func (s *ProgramService) GetByID(id uint) (*model.Program, error) {
	var program model.Program
	err := s.db.Preload("Audiences").
		Preload("Requirements", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, id")
		}).
		First(&program, id).Error
	if err != nil {
		return nil, fmt.Errorf("40402:program not found")
	}
	return &program, nil
}

// AdminList ignores the public defaults so managers see drafts and inactive
// programs too.
func (s *ProgramService) AdminList(kind, status string, page, pageSize int) ([]model.Program, int64, error) {
	query := s.db.Model(&model.Program{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var programs []model.Program
	if err := query.Order("created_at desc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&programs).Error; err != nil {
		return nil, 0, err
	}
	return programs, total, nil
}

func (s *ProgramService) Create(program *model.Program) error {
	if program.Kind == "" {
		program.Kind = model.KindService
	}
	if program.Status == "" {
		program.Status = model.ProgramDraft
	}
	return s.db.Create(program).Error
}

// Update applies a direct administrative field edit. Statuses outside the
// publish/unpublish/mark-done actions are only reachable through here.
func (s *ProgramService) Update(id uint, updates map[string]interface{}) (*model.Program, error) {
	if err := s.db.Model(&model.Program{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Publish activates the program and marks it published.
func (s *ProgramService) Publish(id uint) (*model.Program, error) {
	program, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	err = s.db.Model(program).Updates(map[string]interface{}{
		"is_active": true,
		"status":    model.ProgramPublished,
	}).Error
	if err != nil {
		return nil, err
	}
	program.IsActive = true
	program.Status = model.ProgramPublished
	return program, nil
}

// Unpublish deactivates the program; status is deliberately left unchanged.
func (s *ProgramService) Unpublish(id uint) (*model.Program, error) {
	program, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(program).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	program.IsActive = false
	return program, nil
}

// MarkDone completes the program from any prior status.
func (s *ProgramService) MarkDone(id uint) (*model.Program, error) {
	program, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(program).Update("status", model.ProgramCompleted).Error; err != nil {
		return nil, err
	}
	program.Status = model.ProgramCompleted
	return program, nil
}
