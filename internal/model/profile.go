package model

import (
	"time"

	"gorm.io/datatypes"
)

type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(80);uniqueIndex:idx_skill_name;not null" json:"name"`
}

func (Skill) TableName() string { return "skills" }

type Interest struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(80);uniqueIndex:idx_interest_name;not null" json:"name"`
}

func (Interest) TableName() string { return "interests" }

// VolunteerProfile holds the volunteer-facing identity and metrics. One per
// user, enforced by the unique index on user_id.
type VolunteerProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_profile_user" json:"user_id"`

	FullName   string `gorm:"type:varchar(255);not null" json:"full_name"`
	NationalID string `gorm:"type:varchar(10);uniqueIndex:idx_national_id;not null" json:"national_id"`
	Gender     string `gorm:"type:varchar(10);not null" json:"gender"`
	AgeYears   uint   `gorm:"not null" json:"age_years"`
	Phone      string `gorm:"type:varchar(20);not null" json:"phone"`
	Region     string `gorm:"type:varchar(100);index:idx_city_region,priority:2" json:"region"`
	City       string `gorm:"type:varchar(100);index:idx_city_region,priority:1" json:"city"`

	JoinedHijri string `gorm:"type:varchar(32)" json:"joined_hijri"`

	EducationLevel string `gorm:"type:varchar(20);index:idx_education_level" json:"education_level"`
	Institution    string `gorm:"type:varchar(255)" json:"institution"`
	Major          string `gorm:"type:varchar(255)" json:"major"`
	Bio            string `gorm:"type:text" json:"bio"`

	AvailableDays datatypes.JSONSlice[string] `json:"available_days"`

	Skills    []Skill    `gorm:"many2many:profile_skills" json:"skills,omitempty"`
	Interests []Interest `gorm:"many2many:profile_interests" json:"interests,omitempty"`

	TotalHours uint    `gorm:"default:0" json:"total_hours"`
	RatingAvg  float64 `gorm:"type:decimal(3,1);default:0" json:"rating_avg"`
	Points     uint    `gorm:"default:0" json:"points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (VolunteerProfile) TableName() string { return "volunteer_profiles" }
