package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID         string `gorm:"type:varchar(36);primarykey" json:"id"`
	AssigneeID string `gorm:"type:varchar(36);not null;index" json:"assignee_id"`
	Title      string `gorm:"not null" json:"title"`
	// Date is the calendar day the task is planned for, ISO yyyy-mm-dd.
	// Kept as a string: the forecast lookup matches forecast entries by
	// exact date-string equality.
	Date           string    `gorm:"type:varchar(10);not null" json:"date"`
	Location       string    `gorm:"type:varchar(255);not null" json:"location"`
	WeatherSummary string    `gorm:"type:varchar(255)" json:"weather_summary"`
	IsDone         bool      `gorm:"not null;default:false" json:"is_done"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Assignee Profile `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
}

// BeforeCreate assigns a UUID when the caller did not supply an ID.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
