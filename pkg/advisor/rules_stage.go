package advisor

import (
	"fmt"
)

// ruleGrowthStage emits stage-specific guidance and, when the current stage
// is mostly complete, preparation advice for the transition to the next one.
func (e *Engine) ruleGrowthStage(ac *Context, an *Analysis) []Candidate {
	stage := ac.Stage
	var out []Candidate

	out = append(out, Candidate{
		Action: fmt.Sprintf("Review %s-stage care", stage.Current.Name),
		Description: fmt.Sprintf("%s is %d day(s) into its %s stage (%.0f%% complete). Keep conditions inside the stage's optimal ranges.",
			ac.Plant.Name, stage.DaysInStage, stage.Current.Name, stage.PercentDone),
		Reason:        fmt.Sprintf("plot is in the %s stage", stage.Current.Name),
		Priority:      PriorityLow,
		Category:      CategoryGrowthStage,
		SuggestedTime: TimeAny,
	})

	if stage.PercentDone >= e.cfg.StageReadyPercent && stage.Next != nil {
		out = append(out, Candidate{
			Action: fmt.Sprintf("Prepare for the %s stage", stage.Next.Name),
			Description: fmt.Sprintf("The %s stage is %.0f%% complete; expect the transition to %s in about %d day(s). Adjust ranges and feeding ahead of time.",
				stage.Current.Name, stage.PercentDone, stage.Next.Name, stage.DaysRemaining),
			Reason:        fmt.Sprintf("stage completion %.0f%% is past the readiness threshold", stage.PercentDone),
			Priority:      PriorityMedium,
			Category:      CategoryGrowthStage,
			SuggestedTime: TimeAny,
		})
	}

	return out
}
