package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JGSSSILVA/Personal-Kanban/internal/board"
	"github.com/JGSSSILVA/Personal-Kanban/internal/dto"
	apierrors "github.com/JGSSSILVA/Personal-Kanban/internal/errors"
	"github.com/JGSSSILVA/Personal-Kanban/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	boards         *board.Manager
}

func NewProfileHandler(profileService *services.ProfileService, boards *board.Manager) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		boards:         boards,
	}
}

// ListProfiles returns all profiles in creation order.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch profiles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": dto.ToProfileDTOs(profiles)})
}

// CreateProfile creates a new profile. Duplicate names get their own
// error code so the client can word the message precisely.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	type createProfileRequest struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}

	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.Create(services.CreateProfileInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProfileName):
			c.Status(http.StatusNoContent)
		case errors.Is(err, services.ErrDuplicateProfileName):
			apierrors.DuplicateName(c, "A profile with this name already exists")
		default:
			apierrors.InternalError(c, "Failed to create profile")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileDTO(*profile))
}

// UpdateProfile renames or recolors a profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	type updateProfileRequest struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.Update(c.Param("id"), services.UpdateProfileInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProfileName):
			// Blank edit text is a silent no-op.
			c.Status(http.StatusNoContent)
		case errors.Is(err, services.ErrProfileNotFound):
			apierrors.NotFound(c, "Profile not found")
		case errors.Is(err, services.ErrDuplicateProfileName):
			apierrors.DuplicateName(c, "A profile with this name already exists")
		default:
			apierrors.InternalError(c, "Failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}

// DeleteProfile removes a profile together with all of its tasks, then
// drops it from every live board selection.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id := c.Param("id")

	if err := h.profileService.Delete(id); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			apierrors.NotFound(c, "Profile not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete profile")
		return
	}

	ctx := c.Request.Context()
	h.boards.ForEach(func(b *board.Board) {
		// A board that cannot reload keeps whatever view it had; the
		// store is already consistent.
		_, _ = b.DropProfile(ctx, id)
	})

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}
