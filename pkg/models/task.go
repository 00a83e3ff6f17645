package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a scheduled care action with a due date.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	PlotID      uuid.UUID    `json:"plot_id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	DueDate     time.Time    `json:"due_date"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Completed reports whether the task has been marked done.
func (t Task) Completed() bool {
	return t.CompletedAt != nil
}

// Overdue reports whether the task is past due and still open.
func (t Task) Overdue(now time.Time) bool {
	return !t.Completed() && t.DueDate.Before(now)
}

// DueToday reports whether the task falls on the same calendar day as now.
func (t Task) DueToday(now time.Time) bool {
	if t.Completed() {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Schedule is a recurring care plan for a plot.
type Schedule struct {
	ID           uuid.UUID    `json:"id"`
	PlotID       uuid.UUID    `json:"plot_id"`
	Type         ActivityType `json:"type"`
	IntervalDays int          `json:"interval_days"`
	LastRunAt    *time.Time   `json:"last_run_at,omitempty"`
	NextRunAt    time.Time    `json:"next_run_at"`
	Enabled      bool         `json:"enabled"`
	CreatedAt    time.Time    `json:"created_at"`
}
