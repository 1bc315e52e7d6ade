package model

import (
	"time"

	"gorm.io/gorm"
)

// AudienceSegment tags a program with its target audience, e.g. low-income
// families, widows, the elderly.
type AudienceSegment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(120);uniqueIndex:idx_audience_name;not null" json:"name"`
}

func (AudienceSegment) TableName() string { return "audience_segments" }

// Program is the unified entity for both services and projects; Kind tells
// them apart. ServiceCategory is left blank for projects.
type Program struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Kind         string `gorm:"type:varchar(16);not null;default:service;index:idx_kind_status,priority:1" json:"kind"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	ShortSummary string `gorm:"type:varchar(280)" json:"short_summary"`
	Description  string `gorm:"type:text" json:"description"`
	Status       string `gorm:"type:varchar(16);not null;default:published;index:idx_kind_status,priority:2" json:"status"`
	IsActive     bool   `gorm:"default:true;index:idx_category_active,priority:2" json:"is_active"`

	ServiceCategory string `gorm:"type:varchar(20);index:idx_category_active,priority:1" json:"service_category"`

	Region        string     `gorm:"type:varchar(100)" json:"region"`
	City          string     `gorm:"type:varchar(100)" json:"city"`
	ScheduledDate *time.Time `gorm:"type:date;index:idx_scheduled_date" json:"scheduled_date"`
	SponsorName   string     `gorm:"type:varchar(255)" json:"sponsor_name"`

	AllowVolunteers     bool `gorm:"default:true" json:"allow_volunteers"`
	VolunteersRequired  uint `gorm:"default:0" json:"volunteers_required"`
	VolunteersCommitted uint `gorm:"default:0" json:"volunteers_committed"`

	AllowDonations      bool   `gorm:"default:true" json:"allow_donations"`
	TargetUnitsLabel    string `gorm:"type:varchar(64)" json:"target_units_label"`
	TargetUnits         uint   `gorm:"default:0" json:"target_units"`
	TargetBeneficiaries uint   `gorm:"default:0" json:"target_beneficiaries"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Audiences    []AudienceSegment    `gorm:"many2many:program_audiences" json:"audiences,omitempty"`
	Requirements []ProgramRequirement `gorm:"foreignKey:ProgramID" json:"requirements,omitempty"`
}

func (Program) TableName() string { return "programs" }

// ProgressVolunteers is the committed/required fill percentage shown on
// program cards, capped at 100 and zero when no target is set.
func (p *Program) ProgressVolunteers() int {
	if p.VolunteersRequired == 0 {
		return 0
	}
	pct := int(p.VolunteersCommitted * 100 / p.VolunteersRequired)
	if pct > 100 {
		return 100
	}
	return pct
}

// ProgramRequirement is one line of a program's "what we need from you"
// list, stable-ordered by (order, id).
type ProgramRequirement struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProgramID uint   `gorm:"not null;index:idx_program_id" json:"program_id"`
	Text      string `gorm:"type:varchar(255);not null" json:"text"`
	Order     uint   `gorm:"column:sort_order;default:0" json:"order"`
}

func (ProgramRequirement) TableName() string { return "program_requirements" }
