package dto

import (
	"time"

	"github.com/JGSSSILVA/Personal-Kanban/internal/board"
	"github.com/JGSSSILVA/Personal-Kanban/internal/models"
)

// ProfileDTO represents a profile in API responses
type ProfileDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID             string    `json:"id"`
	AssigneeID     string    `json:"assignee_id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	Location       string    `json:"location"`
	WeatherSummary string    `json:"weather_summary"`
	IsDone         bool      `json:"is_done"`
	CreatedAt      time.Time `json:"created_at"`
}

// BoardDTO is a full board snapshot: both columns plus the selection.
type BoardDTO struct {
	Pending    []TaskDTO    `json:"pending"`
	Completed  []TaskDTO    `json:"completed"`
	Active     []ProfileDTO `json:"active_profiles"`
	AssigneeID string       `json:"assignee_id"`
}

// Conversion functions

// ToProfileDTO converts a Profile model to ProfileDTO
func ToProfileDTO(profile models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        profile.ID,
		Name:      profile.Name,
		Color:     profile.Color,
		CreatedAt: profile.CreatedAt,
	}
}

// ToProfileDTOs converts a slice of Profile models
func ToProfileDTOs(profiles []models.Profile) []ProfileDTO {
	out := make([]ProfileDTO, len(profiles))
	for i, p := range profiles {
		out[i] = ToProfileDTO(p)
	}
	return out
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:             task.ID,
		AssigneeID:     task.AssigneeID,
		Title:          task.Title,
		Date:           task.Date,
		Location:       task.Location,
		WeatherSummary: task.WeatherSummary,
		IsDone:         task.IsDone,
		CreatedAt:      task.CreatedAt,
	}
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}

// ToBoardDTO converts a board snapshot to its response shape
func ToBoardDTO(snap board.Snapshot) BoardDTO {
	return BoardDTO{
		Pending:    ToTaskDTOs(snap.Pending),
		Completed:  ToTaskDTOs(snap.Completed),
		Active:     ToProfileDTOs(snap.Active),
		AssigneeID: snap.AssigneeID,
	}
}
