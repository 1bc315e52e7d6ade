package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// SnapshotUser is the applicant's account identity at apply time.
type SnapshotUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// ProfileSnapshot is the immutable copy of applicant data captured when an
// application is created. It is written once and never recomputed, so admins
// see what was applied with even after later profile edits.
type ProfileSnapshot struct {
	User      SnapshotUser `json:"user"`
	ProfileID uint         `json:"profile_id"`
	ProgramID uint         `json:"program_id"`
}

// JSONProfileSnapshot stores a ProfileSnapshot in a single JSON column.
type JSONProfileSnapshot struct {
	Data *ProfileSnapshot
}

func (j JSONProfileSnapshot) Value() (driver.Value, error) {
	if j.Data == nil {
		return nil, nil
	}
	b, err := json.Marshal(j.Data)
	return string(b), err
}

func (j *JSONProfileSnapshot) Scan(value interface{}) error {
	if value == nil {
		j.Data = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	}
	var snap ProfileSnapshot
	if err := json.Unmarshal(bytes, &snap); err != nil {
		return err
	}
	j.Data = &snap
	return nil
}

func (JSONProfileSnapshot) GormDataType() string { return "json" }

func (j JSONProfileSnapshot) MarshalJSON() ([]byte, error) {
	if j.Data == nil {
		return []byte("null"), nil
	}
	return json.Marshal(j.Data)
}

func (j *JSONProfileSnapshot) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		j.Data = nil
		return nil
	}
	var snap ProfileSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	j.Data = &snap
	return nil
}

// VolunteerApplication is a volunteer's request to join a program. At most
// one per (program, profile) pair, enforced at the storage layer so the
// apply race resolves on the unique index rather than in-process.
type VolunteerApplication struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProgramID uint `gorm:"not null;uniqueIndex:uk_program_profile,priority:1" json:"program_id"`
	ProfileID uint `gorm:"not null;uniqueIndex:uk_program_profile,priority:2" json:"profile_id"`

	Status     string     `gorm:"type:varchar(20);not null;default:applied;index:idx_app_status" json:"status"`
	AppliedAt  time.Time  `gorm:"autoCreateTime;index:idx_applied_at" json:"applied_at"`
	ApprovedAt *time.Time `json:"approved_at"`
	StartDate  *time.Time `gorm:"type:date" json:"start_date"`
	DueDate    *time.Time `gorm:"type:date;index:idx_app_due_date" json:"due_date"`

	PlannedHours uint `gorm:"default:0" json:"planned_hours"`
	ActualHours  uint `gorm:"default:0" json:"actual_hours"`

	OrgRating     *uint  `json:"org_rating"`
	VolunteerNote string `gorm:"type:text" json:"volunteer_note"`

	ProfileSnapshot JSONProfileSnapshot `gorm:"type:json" json:"profile_snapshot"`

	Program *Program          `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Profile *VolunteerProfile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Tasks   []VolunteerTask   `gorm:"foreignKey:ApplicationID" json:"tasks,omitempty"`
}

func (VolunteerApplication) TableName() string { return "volunteer_applications" }
