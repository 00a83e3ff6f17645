package advisor

import (
	"fmt"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// ruleDailyCare detects gaps in the recent care log, e.g. no watering
// activity inside the configured window. It contributes nothing when the
// activity history was unavailable.
func (e *Engine) ruleDailyCare(ac *Context, an *Analysis) []Candidate {
	if !ac.HistoryAvailable {
		return nil
	}

	var out []Candidate

	gap := time.Duration(e.cfg.WateringGapHours) * time.Hour
	if last, ok := ac.LastActivity(models.ActivityWatering); ok {
		if since := ac.Now.Sub(last.PerformedAt); since > gap {
			out = append(out, Candidate{
				Action:        "Water the plot today",
				Description:   fmt.Sprintf("The last logged watering was %.0f hours ago.", since.Hours()),
				Reason:        fmt.Sprintf("no watering activity in more than %d hours", e.cfg.WateringGapHours),
				Priority:      PriorityMedium,
				Category:      CategoryWatering,
				SuggestedTime: TimeMorning,
			})
		}
	} else {
		out = append(out, Candidate{
			Action:        "Log your first watering",
			Description:   "No watering has been recorded for this plot yet; water and log it to start gap tracking.",
			Reason:        "no watering activity on record",
			Priority:      PriorityMedium,
			Category:      CategoryWatering,
			SuggestedTime: TimeMorning,
		})
	}

	// A plot nobody has looked at in a week deserves a walk-through.
	inspectionSince := ac.Now.AddDate(0, 0, -e.cfg.ActivityLookbackDays)
	seen := false
	for _, a := range ac.Activities {
		if a.PerformedAt.After(inspectionSince) {
			seen = true
			break
		}
	}
	if !seen {
		out = append(out, Candidate{
			Action:        "Inspect the plot",
			Description:   fmt.Sprintf("No care activity of any kind in the last %d days.", e.cfg.ActivityLookbackDays),
			Reason:        "care log is empty for the lookback window",
			Priority:      PriorityLow,
			Category:      CategoryMonitoring,
			SuggestedTime: TimeAny,
		})
	}

	return out
}

// ruleNutrition tracks the fertilizing interval. The stage may carry its
// own cadence; otherwise the configured default applies.
func (e *Engine) ruleNutrition(ac *Context, an *Analysis) []Candidate {
	if !ac.HistoryAvailable {
		return nil
	}

	intervalDays := ac.Stage.Current.FertilizeEveryDays
	if intervalDays <= 0 {
		intervalDays = e.cfg.FertilizingGapDays
	}

	last, ok := ac.LastActivity(models.ActivityFertilizing)
	if !ok {
		// Young plantings don't need feeding before the interval elapses.
		if ac.Plot.PlantedAt != nil && ac.Now.Sub(*ac.Plot.PlantedAt) < time.Duration(intervalDays)*24*time.Hour {
			return nil
		}
		return []Candidate{{
			Action:        fmt.Sprintf("Fertilize for the %s stage", ac.Stage.Current.Name),
			Description:   fmt.Sprintf("No fertilizing on record; the %s stage calls for feeding every %d days.", ac.Stage.Current.Name, intervalDays),
			Reason:        "no fertilizing activity on record",
			Priority:      PriorityMedium,
			Category:      CategoryFertilizing,
			SuggestedTime: TimeEvening,
		}}
	}

	days := int(ac.Now.Sub(last.PerformedAt).Hours() / 24)
	if days < intervalDays {
		return nil
	}

	return []Candidate{{
		Action:        fmt.Sprintf("Fertilize for the %s stage", ac.Stage.Current.Name),
		Description:   fmt.Sprintf("Last feeding was %d days ago; the %s stage calls for every %d days.", days, ac.Stage.Current.Name, intervalDays),
		Reason:        fmt.Sprintf("fertilizing interval of %d days exceeded", intervalDays),
		Priority:      PriorityMedium,
		Category:      CategoryFertilizing,
		SuggestedTime: TimeEvening,
	}}
}
