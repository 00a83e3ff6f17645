package advisor

import (
	"fmt"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// ruleTasks surfaces overdue and due-today tasks. Overdue watering or
// fertilizing is treated as high priority since the plant is actively
// missing care; other overdue work is medium.
func (e *Engine) ruleTasks(ac *Context, an *Analysis) []Candidate {
	var out []Candidate

	for _, task := range ac.Tasks {
		switch {
		case task.Overdue(ac.Now):
			priority := PriorityMedium
			if task.Type == models.ActivityWatering || task.Type == models.ActivityFertilizing {
				priority = PriorityHigh
			}
			days := int(ac.Now.Sub(task.DueDate).Hours()/24) + 1
			out = append(out, Candidate{
				Action:        fmt.Sprintf("Catch up on overdue task: %s", task.Title),
				Description:   fmt.Sprintf("%q was due %d day(s) ago.", task.Title, days),
				Reason:        fmt.Sprintf("%s task overdue since %s", task.Type, task.DueDate.Format("2006-01-02")),
				Priority:      priority,
				Category:      CategoryTaskManagement,
				SuggestedTime: TimeAny,
			})
		case task.DueToday(ac.Now):
			out = append(out, Candidate{
				Action:        fmt.Sprintf("Complete today's task: %s", task.Title),
				Description:   fmt.Sprintf("%q is due today.", task.Title),
				Reason:        fmt.Sprintf("%s task due today", task.Type),
				Priority:      PriorityMedium,
				Category:      CategoryTaskManagement,
				SuggestedTime: TimeAny,
			})
		}
	}

	return out
}

// ruleSchedules reminds about recurring care plans whose next run has come
// due but has no matching open task.
func (e *Engine) ruleSchedules(ac *Context, an *Analysis) []Candidate {
	var out []Candidate

	for _, sched := range ac.Schedules {
		if !sched.Enabled || sched.NextRunAt.After(ac.Now) {
			continue
		}
		if hasOpenTask(ac.Tasks, sched.Type) {
			continue
		}
		out = append(out, Candidate{
			Action:        fmt.Sprintf("Run the scheduled %s", displayActivity(sched.Type)),
			Description:   fmt.Sprintf("The %s schedule (every %d days) is due.", displayActivity(sched.Type), sched.IntervalDays),
			Reason:        fmt.Sprintf("schedule next run %s has passed", sched.NextRunAt.Format("2006-01-02")),
			Priority:      PriorityMedium,
			Category:      CategoryTaskManagement,
			SuggestedTime: TimeAny,
		})
	}

	return out
}

func hasOpenTask(tasks []models.Task, t models.ActivityType) bool {
	for _, task := range tasks {
		if task.Type == t && !task.Completed() {
			return true
		}
	}
	return false
}

func displayActivity(t models.ActivityType) string {
	switch t {
	case models.ActivityWatering:
		return "watering"
	case models.ActivityFertilizing:
		return "fertilizing"
	case models.ActivityPruning:
		return "pruning"
	case models.ActivityPestControl:
		return "pest control"
	case models.ActivityWeeding:
		return "weeding"
	case models.ActivityHarvest:
		return "harvest"
	default:
		return "care round"
	}
}
