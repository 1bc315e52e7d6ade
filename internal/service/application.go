package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/notify"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ApplicationService struct {
	db       *gorm.DB
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewApplicationService(db *gorm.DB, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{db: db, notifier: notify.NoopNotifier{}, logger: logger}
}

func (s *ApplicationService) SetNotifier(n notify.Notifier) {
	s.notifier = n
}

// Apply creates at most one application per (program, profile) pair. The
// race between concurrent applies resolves on the storage unique index: a
// duplicate insert is re-read as a get. Returns created=false when the
// application already existed; the notification fires only on first create.
func (s *ApplicationService) Apply(ctx context.Context, user *model.User, programID uint) (*model.VolunteerApplication, bool, error) {
	var program model.Program
	if err := s.db.Where("id = ? AND is_active = ?", programID, true).First(&program).Error; err != nil {
		return nil, false, fmt.Errorf("40402:program not found or inactive")
	}

	// Tolerate duplicate profiles: first by id wins.
	var profile model.VolunteerProfile
	if err := s.db.Where("user_id = ?", user.ID).Order("id").First(&profile).Error; err != nil {
		return nil, false, fmt.Errorf("40403:volunteer profile does not exist yet")
	}

	var existing model.VolunteerApplication
	err := s.db.Where("program_id = ? AND profile_id = ?", program.ID, profile.ID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	app := &model.VolunteerApplication{
		ProgramID: program.ID,
		ProfileID: profile.ID,
		Status:    model.ApplicationApplied,
		ProfileSnapshot: model.JSONProfileSnapshot{Data: &model.ProfileSnapshot{
			User:      model.SnapshotUser{ID: user.ID, Email: user.Email},
			ProfileID: profile.ID,
			ProgramID: program.ID,
		}},
	}
	if err := s.db.Create(app).Error; err != nil {
		if isDuplicateKey(err) {
			// Lost the insert race; the winner's row is the application.
			if err := s.db.Where("program_id = ? AND profile_id = ?", program.ID, profile.ID).First(&existing).Error; err != nil {
				return nil, false, err
			}
			return &existing, false, nil
		}
		return nil, false, err
	}

	// Best-effort notification; the request never fails on delivery errors.
	if err := s.notifier.NotifyApplicationReceived(ctx, notify.ApplicationReceivedEvent{
		ApplicationID: app.ID,
		ProgramID:     program.ID,
		ProgramName:   program.Name,
		Email:         user.Email,
	}); err != nil {
		s.logger.Warn("application notification not delivered",
			zap.Uint("application_id", app.ID), zap.Error(err))
	}

	return app, true, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// ListByUser returns the user's applications, optionally filtered by status,
// newest first.
func (s *ApplicationService) ListByUser(userID uint, status string) ([]model.VolunteerApplication, error) {
	query := s.db.Model(&model.VolunteerApplication{}).
		Joins("JOIN volunteer_profiles ON volunteer_profiles.id = volunteer_applications.profile_id").
		Where("volunteer_profiles.user_id = ?", userID)
	if status != "" {
		query = query.Where("volunteer_applications.status = ?", status)
	}

	var apps []model.VolunteerApplication
	err := query.Preload("Program").Order("volunteer_applications.applied_at desc").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// getOwned loads an application and enforces that it belongs to the user's
// profile. Ownership is an identity check, independent of role membership.
func (s *ApplicationService) getOwned(appID, userID uint) (*model.VolunteerApplication, error) {
	var app model.VolunteerApplication
	if err := s.db.Preload("Profile").First(&app, appID).Error; err != nil {
		return nil, fmt.Errorf("40401:application not found")
	}
	if app.Profile == nil || app.Profile.UserID != userID {
		return nil, fmt.Errorf("40302:not your application")
	}
	return &app, nil
}

// Withdraw is owner-initiated. Completed and rejected applications are
// terminal and cannot be withdrawn.
func (s *ApplicationService) Withdraw(appID, userID uint) (*model.VolunteerApplication, error) {
	app, err := s.getOwned(appID, userID)
	if err != nil {
		return nil, err
	}
	if !model.ApplicationCanTransition(app.Status, model.ApplicationWithdrawn) {
		return nil, fmt.Errorf("40003:cannot withdraw a %s application", app.Status)
	}
	if err := s.db.Model(app).Update("status", model.ApplicationWithdrawn).Error; err != nil {
		return nil, err
	}
	app.Status = model.ApplicationWithdrawn
	return app, nil
}

// UpdateNote sets the owner's free-text note on the application.
func (s *ApplicationService) UpdateNote(appID, userID uint, note string) (*model.VolunteerApplication, error) {
	app, err := s.getOwned(appID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(app).Update("volunteer_note", note).Error; err != nil {
		return nil, err
	}
	app.VolunteerNote = note
	return app, nil
}

// LogHours adds hours to both the application and the owning profile in one
// transaction so a failure partway leaves no partial update.
func (s *ApplicationService) LogHours(appID, userID uint, hours uint) (*model.VolunteerApplication, *model.VolunteerProfile, error) {
	if hours == 0 {
		return nil, nil, fmt.Errorf("40001:hours must be > 0")
	}
	app, err := s.getOwned(appID, userID)
	if err != nil {
		return nil, nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.VolunteerApplication{}).Where("id = ?", app.ID).
			Update("actual_hours", gorm.Expr("actual_hours + ?", hours)).Error; err != nil {
			return err
		}
		return tx.Model(&model.VolunteerProfile{}).Where("id = ?", app.ProfileID).
			Update("total_hours", gorm.Expr("total_hours + ?", hours)).Error
	})
	if err != nil {
		return nil, nil, err
	}

	app.ActualHours += hours
	app.Profile.TotalHours += hours
	return app, app.Profile, nil
}

// GetWithProgram loads an application with its program for kind-based role
// gating on admin transitions.
func (s *ApplicationService) GetWithProgram(appID uint) (*model.VolunteerApplication, error) {
	var app model.VolunteerApplication
	if err := s.db.Preload("Program").First(&app, appID).Error; err != nil {
		return nil, fmt.Errorf("40401:application not found")
	}
	return &app, nil
}

// Approve moves applied -> accepted and stamps approved_at.
func (s *ApplicationService) Approve(app *model.VolunteerApplication) error {
	if !model.ApplicationCanTransition(app.Status, model.ApplicationAccepted) {
		return fmt.Errorf("40003:cannot approve a %s application", app.Status)
	}
	now := time.Now()
	err := s.db.Model(app).Updates(map[string]interface{}{
		"status":      model.ApplicationAccepted,
		"approved_at": &now,
	}).Error
	if err != nil {
		return err
	}
	app.Status = model.ApplicationAccepted
	app.ApprovedAt = &now
	return nil
}

// Reject moves applied -> rejected.
func (s *ApplicationService) Reject(app *model.VolunteerApplication) error {
	if !model.ApplicationCanTransition(app.Status, model.ApplicationRejected) {
		return fmt.Errorf("40003:cannot reject a %s application", app.Status)
	}
	if err := s.db.Model(app).Update("status", model.ApplicationRejected).Error; err != nil {
		return err
	}
	app.Status = model.ApplicationRejected
	return nil
}

// AdminList returns applications for managers, latest first, optionally
// filtered by status and program.
func (s *ApplicationService) AdminList(status string, programID *uint, page, pageSize int) ([]model.VolunteerApplication, int64, error) {
	query := s.db.Model(&model.VolunteerApplication{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if programID != nil {
		query = query.Where("program_id = ?", *programID)
	}

	var total int64
	query.Count(&total)

	var apps []model.VolunteerApplication
	err := query.Preload("Program").Preload("Profile").
		Order("applied_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}
