package repository

import (
	"errors"
	"fmt"

	"github.com/JGSSSILVA/Personal-Kanban/internal/models"
	"gorm.io/gorm"
)

// GormProfileRepository is a GORM implementation of ProfileRepository.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// List returns all profiles in creation order.
func (r *GormProfileRepository) List() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindByID finds a profile by ID.
func (r *GormProfileRepository) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create inserts a new profile, mapping unique-index violations on the
// name column to ErrDuplicateName.
func (r *GormProfileRepository) Create(profile *models.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %q", ErrDuplicateName, profile.Name)
		}
		return err
	}
	return nil
}

// Update persists profile changes.
func (r *GormProfileRepository) Update(profile *models.Profile) error {
	if err := r.db.Save(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %q", ErrDuplicateName, profile.Name)
		}
		return err
	}
	return nil
}

// Delete removes a profile and every task it owns. Tasks go first so a
// failure never leaves orphaned tasks behind a missing profile.
func (r *GormProfileRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignee_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Profile{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
