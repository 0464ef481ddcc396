package repository

import (
	"errors"

	"github.com/JGSSSILVA/Personal-Kanban/internal/models"
)

// ErrDuplicateName is returned when a profile name collides with an
// existing one. Callers surface it differently from generic failures.
var ErrDuplicateName = errors.New("profile name already taken")

// TaskRepository defines the interface for task data access.
type TaskRepository interface {
	// ListByAssignees returns all tasks owned by the given profiles,
	// newest first. An empty id set yields an empty result.
	ListByAssignees(profileIDs []string) ([]models.Task, error)

	// Create inserts a new task and fills in its generated fields.
	Create(task *models.Task) error

	// UpdateStatus persists a task's done flag.
	UpdateStatus(id string, isDone bool) error

	// UpdateTitle persists a task's title.
	UpdateTitle(id, title string) error

	// Delete removes a task.
	Delete(id string) error
}

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	// List returns all profiles in creation order.
	List() ([]models.Profile, error)

	// FindByID finds a profile by ID.
	FindByID(id string) (*models.Profile, error)

	// Create inserts a new profile. A name collision is reported as
	// ErrDuplicateName.
	Create(profile *models.Profile) error

	// Update persists profile changes.
	Update(profile *models.Profile) error

	// Delete removes a profile together with every task it owns.
	Delete(id string) error
}
