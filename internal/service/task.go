package service

import (
	"fmt"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// ListByUser returns the user's tasks across all their applications,
// optionally filtered by status, with items preloaded in stable order.
func (s *TaskService) ListByUser(userID uint, status string) ([]model.VolunteerTask, error) {
	query := s.db.Model(&model.VolunteerTask{}).
		Joins("JOIN volunteer_applications ON volunteer_applications.id = volunteer_tasks.application_id").
		Joins("JOIN volunteer_profiles ON volunteer_profiles.id = volunteer_applications.profile_id").
		Where("volunteer_profiles.user_id = ?", userID)
	if status != "" {
		query = query.Where("volunteer_tasks.status = ?", status)
	}

	var tasks []model.VolunteerTask
	err := query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order, id")
	}).Order("volunteer_tasks.sort_order, volunteer_tasks.id").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// getOwned loads a task and enforces that its application belongs to the
// user's profile.
func (s *TaskService) getOwned(taskID, userID uint) (*model.VolunteerTask, error) {
	var task model.VolunteerTask
	if err := s.db.Preload("Application.Profile").First(&task, taskID).Error; err != nil {
		return nil, fmt.Errorf("40401:task not found")
	}
	if task.Application == nil || task.Application.Profile == nil || task.Application.Profile.UserID != userID {
		return nil, fmt.Errorf("40302:not your task")
	}
	return &task, nil
}

// ListItems returns the task's items in stable (order, id) order.
func (s *TaskService) ListItems(taskID, userID uint) ([]model.VolunteerTaskItem, error) {
	if _, err := s.getOwned(taskID, userID); err != nil {
		return nil, err
	}
	var items []model.VolunteerTaskItem
	if err := s.db.Where("task_id = ?", taskID).Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ToggleItem sets an item's done flag; ownership is checked through the
// item's task and application chain.
func (s *TaskService) ToggleItem(taskID, itemID, userID uint, isDone bool) (*model.VolunteerTaskItem, error) {
	if _, err := s.getOwned(taskID, userID); err != nil {
		return nil, err
	}
	var item model.VolunteerTaskItem
	if err := s.db.Where("id = ? AND task_id = ?", itemID, taskID).First(&item).Error; err != nil {
		return nil, fmt.Errorf("40401:task item not found")
	}
	if err := s.db.Model(&item).Update("is_done", isDone).Error; err != nil {
		return nil, err
	}
	item.IsDone = isDone
	return &item, nil
}

// ProgressUpdate is a partial task update from the owning volunteer. Nil
// fields are left untouched.
type ProgressUpdate struct {
	ProgressPercent *int
	Status          *string
}

// UpdateProgress validates and applies the update. progress_percent must be
// within [0,100]; both boundaries are accepted. Status values must come from
// the enumerated set and pass the transition table.
func (s *TaskService) UpdateProgress(taskID, userID uint, upd ProgressUpdate) (*model.VolunteerTask, error) {
	task, err := s.getOwned(taskID, userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if upd.ProgressPercent != nil {
		pp := *upd.ProgressPercent
		if pp < 0 || pp > 100 {
			return nil, fmt.Errorf("40001:progress_percent must be 0..100")
		}
		updates["progress_percent"] = pp
	}
	if upd.Status != nil {
		st := *upd.Status
		if !model.ValidTaskStatus(st) {
			return nil, fmt.Errorf("40001:invalid task status %q", st)
		}
		if st != task.Status && !model.TaskCanTransition(task.Status, st) {
			return nil, fmt.Errorf("40003:cannot move task from %s to %s", task.Status, st)
		}
		updates["status"] = st
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("40001:no fields to update")
	}

	if err := s.db.Model(task).Updates(updates).Error; err != nil {
		return nil, err
	}
	if upd.ProgressPercent != nil {
		task.ProgressPercent = uint(*upd.ProgressPercent)
	}
	if upd.Status != nil {
		task.Status = *upd.Status
	}
	return task, nil
}

// CreateTask attaches a new task to an application (admin side).
func (s *TaskService) CreateTask(task *model.VolunteerTask) error {
	var count int64
	s.db.Model(&model.VolunteerApplication{}).Where("id = ?", task.ApplicationID).Count(&count)
	if count == 0 {
		return fmt.Errorf("40401:application not found")
	}
	if task.Status == "" {
		task.Status = model.TaskNew
	}
	return s.db.Create(task).Error
}

// CreateItem attaches a new item to a task (admin side).
func (s *TaskService) CreateItem(item *model.VolunteerTaskItem) error {
	var count int64
	s.db.Model(&model.VolunteerTask{}).Where("id = ?", item.TaskID).Count(&count)
	if count == 0 {
		return fmt.Errorf("40401:task not found")
	}
	return s.db.Create(item).Error
}
