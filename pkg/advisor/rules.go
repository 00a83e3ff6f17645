package advisor

import (
	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// ruleFunc is one independent advice generator. Rules are pure: they read
// the context and analysis, never mutate them, and return an empty slice
// when their preconditions are unmet.
type ruleFunc func(ac *Context, an *Analysis) []Candidate

// rule pairs a generator with a name for logging.
type rule struct {
	name  string
	apply ruleFunc
}

// catalog returns the full rule set in a stable order. Order does not
// affect the final ranking beyond tie-breaking, but keeping it stable keeps
// results deterministic.
func (e *Engine) catalog() []rule {
	return []rule{
		{"emergency", e.ruleEmergency},
		{"environmental", e.ruleEnvironmental},
		{"daily-care", e.ruleDailyCare},
		{"nutrition", e.ruleNutrition},
		{"weather-forecast", e.ruleWeatherForecast},
		{"growth-stage", e.ruleGrowthStage},
		{"tasks", e.ruleTasks},
		{"schedules", e.ruleSchedules},
		{"seasonal", e.ruleSeasonal},
		{"planning", e.rulePlanning},
	}
}

// weatherCatalog is the subset used by ComputeWeatherAdvice.
func (e *Engine) weatherCatalog() []rule {
	return []rule{
		{"weather-forecast", e.ruleWeatherForecast},
	}
}

// runRules executes every rule in the catalog over the same inputs and
// collects the candidates.
func runRules(rules []rule, ac *Context, an *Analysis) []Candidate {
	var candidates []Candidate
	for _, r := range rules {
		candidates = append(candidates, r.apply(ac, an)...)
	}
	return candidates
}

// personalize annotates candidates for the gardener's experience level.
// The annotation is an extra explanatory sentence only; priority and
// category stay untouched so merge keys remain stable.
func personalize(candidates []Candidate, level models.ExperienceLevel) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)

	for i := range out {
		switch level {
		case models.ExperienceNovice:
			out[i].Detail = noviceDetail(out[i].Category)
		case models.ExperienceExpert:
			out[i].Detail = expertDetail(out[i].Category)
		}
	}
	return out
}

func noviceDetail(c Category) string {
	switch c {
	case CategoryWatering, CategoryEmergency:
		return "Water slowly at the base of the plant until the top few centimeters of soil are dark and moist."
	case CategoryTemperature:
		return "Plants stressed by temperature wilt or curl their leaves; moving containers or adding shade cloth helps quickly."
	case CategoryHumidity:
		return "Grouping plants together or placing a tray of water nearby raises humidity around the leaves."
	case CategoryLight:
		return "Most vegetables want at least six hours of direct light; a south-facing spot is usually best."
	case CategorySoilPH:
		return "Soil pH controls which nutrients roots can absorb; small corrections work better than large ones."
	case CategoryFertilizing:
		return "Less is more with fertilizer: follow the package dose and water afterwards so roots are not burned."
	case CategoryGrowthStage:
		return "Each growth stage has different needs; the transition is a good moment to review watering and feeding."
	case CategoryWeather:
		return "Checking tomorrow's forecast before watering saves water and prevents soggy soil."
	case CategoryTaskManagement:
		return "Finishing overdue care tasks first keeps small problems from compounding."
	default:
		return "A short daily look at leaves and soil catches most problems early."
	}
}

func expertDetail(c Category) string {
	switch c {
	case CategoryWatering, CategoryEmergency:
		return "Consider a moisture retention check at 10cm depth before and 30 minutes after irrigation to verify infiltration."
	case CategoryTemperature:
		return "Track growing-degree days against the cultivar's heat tolerance to time shading interventions."
	case CategoryHumidity:
		return "VPD in the 0.8-1.2 kPa band is a tighter control target than relative humidity alone."
	case CategoryLight:
		return "A daily light integral above 12 mol/m²/day suits most fruiting crops; supplement or shade to hit it."
	case CategorySoilPH:
		return "Buffer pH with elemental sulfur or dolomitic lime in split applications, re-testing after two weeks."
	case CategoryFertilizing:
		return "Tissue analysis mid-stage gives a better N-P-K correction signal than calendar-based feeding."
	case CategoryGrowthStage:
		return "Pre-transition is the window for root-zone conditioning and any trellising changes."
	case CategoryWeather:
		return "Integrating forecast evapotranspiration into the irrigation budget avoids over-correction."
	case CategoryTaskManagement:
		return "Batching same-tool tasks into one session reduces disturbance to the bed."
	default:
		return "Correlating sensor trends with your activity log often exposes cause-effect patterns worth acting on."
	}
}
