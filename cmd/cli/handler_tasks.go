package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// TaskRequest is the JSON body for creating a task
type TaskRequest struct {
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
}

// ScheduleRequest is the JSON body for creating a schedule
type ScheduleRequest struct {
	Type         string     `json:"type"`
	IntervalDays int        `json:"interval_days"`
	NextRunAt    *time.Time `json:"next_run_at,omitempty"`
	Enabled      *bool      `json:"enabled,omitempty"`
}

// getTasksHandler returns the open tasks of a plot, soonest due first
func (rm *RouteManager) getTasksHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	tasks, err := rm.dbManager.OpenTasks(r.Context(), plotID)
	if err != nil {
		log.Printf("❌ Failed to query tasks: %v", err)
		http.Error(w, "Failed to query tasks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

// createTaskHandler creates a task for a plot
func (rm *RouteManager) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	taskType, err := models.ParseActivityType(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if req.DueDate.IsZero() {
		http.Error(w, "due_date is required", http.StatusBadRequest)
		return
	}

	task := &models.Task{
		PlotID:  plotID,
		Type:    taskType,
		Title:   req.Title,
		DueDate: req.DueDate.UTC(),
	}

	if err := rm.dbManager.CreateTask(r.Context(), task); err != nil {
		log.Printf("❌ Failed to create task: %v", err)
		http.Error(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task)
}

// completeTaskHandler marks a task as done
func (rm *RouteManager) completeTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid task_id format", http.StatusBadRequest)
		return
	}

	task, err := rm.dbManager.CompleteTask(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Open task not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to complete task: %v", err)
		http.Error(w, "Failed to complete task", http.StatusInternalServerError)
		return
	}

	// Completing the work satisfies any due schedule of the same type.
	rm.advanceDueSchedules(r.Context(), task)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

// advanceDueSchedules moves due schedules matching a completed task's type
// forward by their interval. Failures only log; the completion succeeded.
func (rm *RouteManager) advanceDueSchedules(ctx context.Context, task *models.Task) {
	schedules, err := rm.dbManager.Schedules(ctx, task.PlotID)
	if err != nil {
		log.Printf("⚠ Failed to query schedules for plot %s: %v", task.PlotID, err)
		return
	}

	now := time.Now().UTC()
	for _, sched := range schedules {
		if !sched.Enabled || sched.Type != task.Type || sched.NextRunAt.After(now) {
			continue
		}
		if err := rm.dbManager.AdvanceSchedule(ctx, sched.ID); err != nil {
			log.Printf("⚠ Failed to advance schedule %s: %v", sched.ID, err)
		}
	}
}

// deleteTaskHandler removes a task
func (rm *RouteManager) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid task_id format", http.StatusBadRequest)
		return
	}

	if err := rm.dbManager.DeleteTask(r.Context(), taskID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to delete task: %v", err)
		http.Error(w, "Failed to delete task", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getSchedulesHandler returns the schedules of a plot
func (rm *RouteManager) getSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	schedules, err := rm.dbManager.Schedules(r.Context(), plotID)
	if err != nil {
		log.Printf("❌ Failed to query schedules: %v", err)
		http.Error(w, "Failed to query schedules", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedules)
}

// createScheduleHandler creates a recurring care plan for a plot
func (rm *RouteManager) createScheduleHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	scheduleType, err := models.ParseActivityType(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.IntervalDays < 1 {
		http.Error(w, "interval_days must be at least 1", http.StatusBadRequest)
		return
	}

	nextRunAt := time.Now().UTC().AddDate(0, 0, req.IntervalDays)
	if req.NextRunAt != nil {
		nextRunAt = req.NextRunAt.UTC()
	}

	schedule := &models.Schedule{
		PlotID:       plotID,
		Type:         scheduleType,
		IntervalDays: req.IntervalDays,
		NextRunAt:    nextRunAt,
		Enabled:      true,
	}
	if req.Enabled != nil {
		schedule.Enabled = *req.Enabled
	}

	if err := rm.dbManager.CreateSchedule(r.Context(), schedule); err != nil {
		log.Printf("❌ Failed to create schedule: %v", err)
		http.Error(w, "Failed to create schedule", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(schedule)
}
