package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/JGSSSILVA/Personal-Kanban/internal/models"
	"github.com/JGSSSILVA/Personal-Kanban/internal/repository"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrInvalidProfileName   = errors.New("profile name cannot be empty")
	ErrDuplicateProfileName = errors.New("a profile with this name already exists")
)

const defaultProfileColor = "#6366f1"

// ProfileService provides business logic for profile operations.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// List returns all profiles in creation order.
func (s *ProfileService) List() ([]models.Profile, error) {
	profiles, err := s.profileRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Get returns a single profile.
func (s *ProfileService) Get(id string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// CreateProfileInput represents parameters to create a new profile.
type CreateProfileInput struct {
	Name  string
	Color string
}

// Create adds a profile. Names are trimmed, must be non-empty and unique.
func (s *ProfileService) Create(input CreateProfileInput) (*models.Profile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidProfileName
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = defaultProfileColor
	}

	profile := &models.Profile{
		Name:  name,
		Color: color,
	}

	if err := s.profileRepo.Create(profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrDuplicateProfileName
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// UpdateProfileInput represents a partial profile update.
type UpdateProfileInput struct {
	Name  *string
	Color *string
}

// Update renames or recolors a profile. A blank name is refused.
func (s *ProfileService) Update(id string, input UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidProfileName
		}
		profile.Name = name
	}
	if input.Color != nil && strings.TrimSpace(*input.Color) != "" {
		profile.Color = strings.TrimSpace(*input.Color)
	}

	if err := s.profileRepo.Update(profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrDuplicateProfileName
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// Delete removes a profile and cascades to every task it owns.
func (s *ProfileService) Delete(id string) error {
	if err := s.profileRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
