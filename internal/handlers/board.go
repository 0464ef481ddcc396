package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JGSSSILVA/Personal-Kanban/internal/board"
	"github.com/JGSSSILVA/Personal-Kanban/internal/dto"
	apierrors "github.com/JGSSSILVA/Personal-Kanban/internal/errors"
	"github.com/JGSSSILVA/Personal-Kanban/internal/middleware"
	"github.com/JGSSSILVA/Personal-Kanban/internal/services"
)

type BoardHandler struct {
	boards         *board.Manager
	profileService *services.ProfileService
}

func NewBoardHandler(boards *board.Manager, profileService *services.ProfileService) *BoardHandler {
	return &BoardHandler{
		boards:         boards,
		profileService: profileService,
	}
}

func (h *BoardHandler) boardFor(c *gin.Context) (*board.Board, bool) {
	boardID, ok := middleware.GetBoardID(c)
	if !ok {
		apierrors.InternalError(c, "No board session")
		return nil, false
	}
	return h.boards.Get(boardID), true
}

// GetBoard returns the current board snapshot: both columns plus the
// active selection.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	b, ok := h.boardFor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(b.Snapshot()))
}

// ToggleProfile flips a profile in or out of the board's active set and
// reloads the columns from the store.
func (h *BoardHandler) ToggleProfile(c *gin.Context) {
	b, ok := h.boardFor(c)
	if !ok {
		return
	}

	type toggleRequest struct {
		ProfileID string `json:"profile_id" binding:"required"`
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.Get(req.ProfileID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			apierrors.NotFound(c, "Profile not found")
			return
		}
		apierrors.InternalError(c, "Failed to load profile")
		return
	}

	snap, err := b.ToggleProfile(c.Request.Context(), *profile)
	if err != nil {
		apierrors.InternalError(c, "Failed to load tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(snap))
}

// CreateTask adds a task under the current assignee, resolving its
// weather summary first. Missing fields are refused silently.
func (h *BoardHandler) CreateTask(c *gin.Context) {
	b, ok := h.boardFor(c)
	if !ok {
		return
	}

	type createTaskRequest struct {
		Title    string `json:"title"`
		Date     string `json:"date"`
		Location string `json:"location"`
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := b.Add(c.Request.Context(), board.AddTaskInput{
		Title:    req.Title,
		Date:     req.Date,
		Location: req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, board.ErrMissingFields):
			// Input validation failures are no-ops, not errors.
			c.Status(http.StatusNoContent)
		case errors.Is(err, board.ErrAddInFlight):
			apierrors.Conflict(c, "A task is already being added")
		default:
			apierrors.InternalError(c, "Failed to create task")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// MoveTask applies a drag gesture to the board. Cross-column persistence
// failures are reverted internally; the handler always answers with the
// settled snapshot.
func (h *BoardHandler) MoveTask(c *gin.Context) {
	b, ok := h.boardFor(c)
	if !ok {
		return
	}

	var mv board.Move
	if err := c.ShouldBindJSON(&mv); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	snap := b.ApplyMove(c.Request.Context(), mv)
	c.JSON(http.StatusOK, dto.ToBoardDTO(snap))
}

// UpdateTask renames a task. A blank title is refused silently.
func (h *BoardHandler) UpdateTask(c *gin.Context) {
	b, ok := h.boardFor(c)
	if !ok {
		return
	}

	type updateTaskRequest struct {
		Title  string `json:"title"`
		IsDone bool   `json:"is_done"`
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := b.EditTitle(c.Request.Context(), c.Param("id"), req.IsDone, req.Title); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(b.Snapshot()))
}

// DeleteTask removes a task. The board only forgets it once the store
// confirms the delete.
func (h *BoardHandler) DeleteTask(c *gin.Context) {
	b, ok := h.boardFor(c)
	if !ok {
		return
	}

	isDone := c.Query("done") == "true"

	if err := b.Remove(c.Request.Context(), c.Param("id"), isDone); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(b.Snapshot()))
}
