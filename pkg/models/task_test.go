package models

import (
	"testing"
	"time"
)

func TestTaskOverdueAndDueToday(t *testing.T) {
	now := time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)
	done := now.Add(-time.Hour)

	tests := []struct {
		name        string
		task        Task
		wantOverdue bool
		wantToday   bool
	}{
		{
			name:        "due yesterday",
			task:        Task{DueDate: now.AddDate(0, 0, -1)},
			wantOverdue: true,
			wantToday:   false,
		},
		{
			name:        "due later today",
			task:        Task{DueDate: now.Add(4 * time.Hour)},
			wantOverdue: false,
			wantToday:   true,
		},
		{
			name:        "due earlier today",
			task:        Task{DueDate: now.Add(-2 * time.Hour)},
			wantOverdue: true,
			wantToday:   true,
		},
		{
			name:        "due tomorrow",
			task:        Task{DueDate: now.AddDate(0, 0, 1)},
			wantOverdue: false,
			wantToday:   false,
		},
		{
			name:        "completed task is never overdue",
			task:        Task{DueDate: now.AddDate(0, 0, -3), CompletedAt: &done},
			wantOverdue: false,
			wantToday:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Overdue(now); got != tt.wantOverdue {
				t.Errorf("Overdue() = %t, want %t", got, tt.wantOverdue)
			}
			if got := tt.task.DueToday(now); got != tt.wantToday {
				t.Errorf("DueToday() = %t, want %t", got, tt.wantToday)
			}
		})
	}
}

func TestTaskCompleted(t *testing.T) {
	now := time.Now()
	if (Task{}).Completed() {
		t.Error("Expected open task to not be completed")
	}
	if !(Task{CompletedAt: &now}).Completed() {
		t.Error("Expected task with CompletedAt to be completed")
	}
}
