package repository

import (
	"github.com/JGSSSILVA/Personal-Kanban/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository.
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// ListByAssignees returns all tasks owned by the given profiles, newest first.
func (r *GormTaskRepository) ListByAssignees(profileIDs []string) ([]models.Task, error) {
	if len(profileIDs) == 0 {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	err := r.db.
		Where("assignee_id IN ?", profileIDs).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// Create inserts a new task.
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// UpdateStatus persists a task's done flag.
func (r *GormTaskRepository) UpdateStatus(id string, isDone bool) error {
	res := r.db.Model(&models.Task{}).Where("id = ?", id).Update("is_done", isDone)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateTitle persists a task's title.
func (r *GormTaskRepository) UpdateTitle(id, title string) error {
	res := r.db.Model(&models.Task{}).Where("id = ?", id).Update("title", title)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a task.
func (r *GormTaskRepository) Delete(id string) error {
	res := r.db.Delete(&models.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
