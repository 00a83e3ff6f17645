package advisor

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// categoryImportance is the fixed ranking table used as the final sort key.
// Higher is more important.
var categoryImportance = map[Category]int{
	CategoryEmergency:      100,
	CategoryWatering:       90,
	CategoryTemperature:    85,
	CategoryFertilizing:    80,
	CategoryGrowthStage:    75,
	CategoryWeather:        70,
	CategoryTaskManagement: 65,
	CategoryHumidity:       60,
	CategoryLight:          58,
	CategorySoilPH:         56,
	CategoryMonitoring:     50,
	CategorySeasonal:       40,
	CategoryEducation:      30,
}

// mergeKey groups candidates that describe the same underlying concern:
// same category plus the same leading words of the action.
func mergeKey(c Candidate) string {
	words := strings.Fields(strings.ToLower(c.Action))
	if len(words) > 2 {
		words = words[:2]
	}
	return string(c.Category) + "|" + strings.Join(words, " ")
}

// merge collapses candidates with the same merge key. Reasons are
// concatenated and the group takes the maximum priority, never a lower
// one.
func merge(candidates []Candidate) []Candidate {
	var out []Candidate
	index := make(map[string]int)

	for _, c := range candidates {
		key := mergeKey(c)
		if i, ok := index[key]; ok {
			existing := &out[i]
			existing.Priority = maxPriority(existing.Priority, c.Priority)
			if c.Reason != "" && !strings.Contains(existing.Reason, c.Reason) {
				existing.Reason = existing.Reason + "; " + c.Reason
			}
			continue
		}
		index[key] = len(out)
		out = append(out, c)
	}

	return out
}

// rank sorts candidates by priority tier, then whether the suggested time
// matches the current bucket, then the category importance table. The sort
// is stable so equally-ranked candidates keep their rule-catalog order.
func rank(candidates []Candidate, now time.Time) []Candidate {
	bucket := bucketFor(now)
	out := make([]Candidate, len(candidates))
	copy(out, candidates)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Priority.rank() != b.Priority.rank() {
			return a.Priority.rank() > b.Priority.rank()
		}
		am := a.SuggestedTime == bucket
		bm := b.SuggestedTime == bucket
		if am != bm {
			return am
		}
		return categoryImportance[a.Category] > categoryImportance[b.Category]
	})

	return out
}

// cap keeps at most the configured number of items per priority tier.
// Running cap after rank guarantees the most relevant items survive.
func capTiers(candidates []Candidate, cfg Config) []Candidate {
	limits := map[Priority]int{
		PriorityHigh:   cfg.HighCap,
		PriorityMedium: cfg.MediumCap,
		PriorityLow:    cfg.LowCap,
	}
	counts := make(map[Priority]int)

	var out []Candidate
	for _, c := range candidates {
		if counts[c.Priority] >= limits[c.Priority] {
			continue
		}
		counts[c.Priority]++
		out = append(out, c)
	}
	return out
}

// fallbackCandidate is returned when no rule produced anything: the system
// never hands the user an empty advisory.
func fallbackCandidate() Candidate {
	return Candidate{
		Action:        "Observe the plot daily",
		Description:   "Everything looks fine right now. A short daily check of leaves and soil keeps it that way.",
		Reason:        "no issues detected",
		Priority:      PriorityLow,
		Category:      CategoryMonitoring,
		SuggestedTime: TimeMorning,
	}
}

// finalize runs merge, rank, cap and id assignment over raw candidates and
// wraps them in a Result with generation metadata.
func (e *Engine) finalize(plotID uuid.UUID, candidates []Candidate, risks []RiskItem, summary RiskSummary, now time.Time) *Result {
	merged := merge(candidates)
	ranked := rank(merged, now)
	capped := capTiers(ranked, e.cfg)

	if len(capped) == 0 {
		capped = []Candidate{fallbackCandidate()}
	}

	items := make([]Item, len(capped))
	for i, c := range capped {
		items[i] = Item{ID: i + 1, Candidate: c}
	}

	return &Result{
		PlotID:        plotID,
		GeneratedAt:   now,
		EngineVersion: EngineVersion,
		Items:         items,
		Risks:         risks,
		RiskSummary:   summary,
	}
}
