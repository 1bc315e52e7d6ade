package model

import "time"

// VolunteerTask is a unit of work under an application, broken into items.
type VolunteerTask struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ApplicationID uint `gorm:"not null;index:idx_application_id" json:"application_id"`

	Title           string `gorm:"type:varchar(255);not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	Status          string `gorm:"type:varchar(20);not null;default:new;index:idx_task_status" json:"status"`
	ProgressPercent uint   `gorm:"default:0" json:"progress_percent"`
	Order           uint   `gorm:"column:sort_order;default:0" json:"order"`

	PlannedHours   uint       `gorm:"default:0" json:"planned_hours"`
	DueDate        *time.Time `gorm:"type:date" json:"due_date"`
	LocationCity   string     `gorm:"type:varchar(100)" json:"location_city"`
	LocationRegion string     `gorm:"type:varchar(100)" json:"location_region"`

	Application *VolunteerApplication `gorm:"foreignKey:ApplicationID" json:"-"`
	Items       []VolunteerTaskItem   `gorm:"foreignKey:TaskID" json:"items,omitempty"`
}

func (VolunteerTask) TableName() string { return "volunteer_tasks" }

// VolunteerTaskItem is one checkbox line of a task, stable-ordered by
// (order, id).
type VolunteerTaskItem struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	TaskID uint   `gorm:"not null;index:idx_task_id" json:"task_id"`
	Text   string `gorm:"type:varchar(255);not null" json:"text"`
	IsDone bool   `gorm:"default:false" json:"is_done"`
	Order  uint   `gorm:"column:sort_order;default:0" json:"order"`

	Task *VolunteerTask `gorm:"foreignKey:TaskID" json:"-"`
}

func (VolunteerTaskItem) TableName() string { return "volunteer_task_items" }
