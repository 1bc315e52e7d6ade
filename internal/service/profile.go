package service

import (
	"fmt"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/validate"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetByUserID loads the user's volunteer profile with its tags.
func (s *ProfileService) GetByUserID(userID uint) (*model.VolunteerProfile, error) {
	var profile model.VolunteerProfile
	err := s.db.Preload("Skills").Preload("Interests").
		Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("40403:volunteer profile does not exist")
	}
	return &profile, nil
}

// Update applies a partial profile edit. Phone values are re-normalized and
// re-checked on every update.
func (s *ProfileService) Update(userID uint, updates map[string]interface{}) (*model.VolunteerProfile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if phone, ok := updates["phone"].(string); ok {
		normalized := validate.NormalizeSaudiPhone(phone)
		if !validate.ValidSaudiPhone(normalized) {
			return nil, fmt.Errorf("40001:invalid Saudi phone number")
		}
		updates["phone"] = normalized
	}
	if gender, ok := updates["gender"].(string); ok {
		if gender != model.GenderMale && gender != model.GenderFemale {
			return nil, fmt.Errorf("40001:invalid gender")
		}
	}
	if age, ok := updates["age_years"]; ok {
		v, ok := age.(uint)
		if !ok || v < 14 || v > 100 {
			return nil, fmt.Errorf("40001:age must be between 14 and 100")
		}
	}

	if err := s.db.Model(profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByUserID(userID)
}

// SetSkills replaces the profile's skill set with the given ids. Unknown ids
// are silently dropped.
func (s *ProfileService) SetSkills(userID uint, ids []uint) ([]model.Skill, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	var skills []model.Skill
	if err := s.db.Where("id IN ?", ids).Find(&skills).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(profile).Association("Skills").Replace(&skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// SetInterests replaces the profile's interest set with the given ids.
func (s *ProfileService) SetInterests(userID uint, ids []uint) ([]model.Interest, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	var interests []model.Interest
	if err := s.db.Where("id IN ?", ids).Find(&interests).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(profile).Association("Interests").Replace(&interests); err != nil {
		return nil, err
	}
	return interests, nil
}

func (s *ProfileService) ListSkills() ([]model.Skill, error) {
	var skills []model.Skill
	if err := s.db.Order("name").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (s *ProfileService) ListInterests() ([]model.Interest, error) {
	var interests []model.Interest
	if err := s.db.Order("name").Find(&interests).Error; err != nil {
		return nil, err
	}
	return interests, nil
}
