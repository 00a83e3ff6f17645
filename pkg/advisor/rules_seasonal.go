package advisor

import (
	"fmt"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// seasonalNote holds the month-keyed guidance for outdoor plots.
type seasonalNote struct {
	focus string
	prep  string
}

// seasonalNotes is keyed by calendar month, northern-hemisphere oriented.
// Only indoor plots skip them; greenhouse and balcony plots still follow
// the outdoor sowing and harvest calendar.
var seasonalNotes = map[time.Month]seasonalNote{
	time.January:   {focus: "Plan the season: order seeds and sketch the rotation.", prep: "Check stored tools and start slow-germinating seeds indoors."},
	time.February:  {focus: "Start seedlings indoors and prepare beds as soil allows.", prep: "Warm beds with covers so early sowings are possible."},
	time.March:     {focus: "Sow hardy crops and harden off early seedlings.", prep: "Watch for late frost; keep covers within reach."},
	time.April:     {focus: "Main sowing window: direct-sow and transplant as soil warms.", prep: "Set up supports before plants need them."},
	time.May:       {focus: "Transplant frost-tender crops after the last frost date.", prep: "Mulch beds before summer heat sets in."},
	time.June:      {focus: "Keep on top of watering and successive sowings.", prep: "Install shade for heat-sensitive crops."},
	time.July:      {focus: "Peak water demand: water deeply and mulch well.", prep: "Sow autumn crops in trays out of the heat."},
	time.August:    {focus: "Harvest steadily and keep removing spent plants.", prep: "Plant autumn and overwintering crops."},
	time.September: {focus: "Harvest peak: preserve surplus and clear finished beds.", prep: "Sow green manure on cleared beds."},
	time.October:   {focus: "Plant garlic and tidy beds before the cold.", prep: "Protect tender perennials before first frost."},
	time.November:  {focus: "Mulch beds and compost the season's debris.", prep: "Insulate containers and drain irrigation lines."},
	time.December:  {focus: "Rest month: maintain tools and review the year's log.", prep: "Order seed catalogues for the coming season."},
}

// ruleSeasonal emits month-keyed guidance plus preparation advice for the
// coming month's transition.
func (e *Engine) ruleSeasonal(ac *Context, an *Analysis) []Candidate {
	if ac.Plot.GardenType == models.GardenTypeIndoor {
		return nil
	}

	month := ac.Now.Month()
	note := seasonalNotes[month]

	out := []Candidate{{
		Action:        fmt.Sprintf("Seasonal focus for %s", month),
		Description:   note.focus,
		Reason:        fmt.Sprintf("month-keyed guidance for %s", month),
		Priority:      PriorityLow,
		Category:      CategorySeasonal,
		SuggestedTime: TimeAny,
	}}

	// Month-ahead preparation in the last third of the month.
	if ac.Now.Day() >= 20 {
		next := time.Month(month%12 + 1)
		nextNote := seasonalNotes[next]
		out = append(out, Candidate{
			Action:        fmt.Sprintf("Prepare for %s", next),
			Description:   nextNote.prep,
			Reason:        fmt.Sprintf("transition preparation for %s", next),
			Priority:      PriorityLow,
			Category:      CategorySeasonal,
			SuggestedTime: TimeAny,
		})
	}

	return out
}

// rulePlanning covers the longer horizon: rotation after a finished
// lifecycle, sensor-coverage upgrades, and a consistency nod when the care
// log shows steady activity.
func (e *Engine) rulePlanning(ac *Context, an *Analysis) []Candidate {
	var out []Candidate

	// Rotation once the final stage has run its course.
	if ac.Stage.Next == nil && ac.Stage.PercentDone >= 100 {
		out = append(out, Candidate{
			Action:        "Plan the next crop rotation",
			Description:   fmt.Sprintf("%s has completed its %s stage; rotating to another crop family keeps the soil healthy.", ac.Plant.Name, ac.Stage.Current.Name),
			Reason:        "plant lifecycle complete",
			Priority:      PriorityLow,
			Category:      CategoryEducation,
			SuggestedTime: TimeAny,
		})
	}

	// Coverage upgrade when key sensor types are missing.
	missing := 0
	for _, st := range models.AllSensorTypes {
		if _, ok := ac.Series[st]; !ok {
			missing++
		}
	}
	if missing >= 3 {
		out = append(out, Candidate{
			Action:        "Extend sensor coverage",
			Description:   fmt.Sprintf("Only %d of %d sensor types report data; soil moisture, temperature and humidity coverage gives the advisor the most to work with.", len(models.AllSensorTypes)-missing, len(models.AllSensorTypes)),
			Reason:        "sparse sensor coverage",
			Priority:      PriorityLow,
			Category:      CategoryEducation,
			SuggestedTime: TimeAny,
		})
	}

	// Achievement tracking: steady logging deserves a mention.
	if ac.HistoryAvailable && len(ac.Activities) >= 20 {
		out = append(out, Candidate{
			Action:        "Keep up the consistent care routine",
			Description:   fmt.Sprintf("%d care activities logged in the last %d days. Consistent records make every other recommendation sharper.", len(ac.Activities), e.cfg.PlanningLookbackDays),
			Reason:        "sustained care activity in the lookback window",
			Priority:      PriorityLow,
			Category:      CategoryEducation,
			SuggestedTime: TimeAny,
		})
	}

	return out
}
