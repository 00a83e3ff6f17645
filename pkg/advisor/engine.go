// Package advisor implements the environmental advisory decision engine:
// it fuses sensor trend analysis, optimal-range deviation scoring,
// weather-risk assessment, growth-stage context and care-history gaps into
// a bounded, de-duplicated, priority-ordered list of care recommendations.
//
// Every stage after context assembly is a pure function of its inputs, so
// the same context always produces the same ordered result.
package advisor

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// Engine computes care advice for plots. It holds no per-request state;
// one engine instance serves concurrent requests.
type Engine struct {
	builder *Builder
	cfg     Config
}

// New creates an engine over the given collaborator stores.
func New(builder *Builder, cfg Config) *Engine {
	return &Engine{builder: builder, cfg: cfg}
}

// ComputeAdvice runs the full rule catalog for a plot and returns the
// ranked advisory. The only fatal failure is an incomplete minimal context
// (plot, plant, growth stage); everything else degrades to fewer advice
// categories.
func (e *Engine) ComputeAdvice(ctx context.Context, plotID uuid.UUID) (*Result, error) {
	ac, err := e.builder.Build(ctx, plotID)
	if err != nil {
		return nil, err
	}
	return e.compute(ac, e.catalog()), nil
}

// ComputeWeatherAdvice runs only the weather-driven rule subset.
func (e *Engine) ComputeWeatherAdvice(ctx context.Context, plotID uuid.UUID) (*Result, error) {
	ac, err := e.builder.Build(ctx, plotID)
	if err != nil {
		return nil, err
	}
	return e.compute(ac, e.weatherCatalog()), nil
}

// Analyze exposes the sensor/risk analysis without running rules; the HTTP
// layer serves it as the plot's current condition report.
func (e *Engine) Analyze(ctx context.Context, plotID uuid.UUID) (*Analysis, error) {
	ac, err := e.builder.Build(ctx, plotID)
	if err != nil {
		return nil, err
	}
	return e.analyze(ac), nil
}

// compute is the pure pipeline: analyze, run rules, personalize, finalize.
func (e *Engine) compute(ac *Context, rules []rule) *Result {
	an := e.analyze(ac)
	candidates := runRules(rules, ac, an)
	candidates = personalize(candidates, ac.Plot.Experience)
	return e.finalize(ac.Plot.ID, candidates, an.Risks, an.Summary, ac.Now)
}

// analyze runs the sensor analyzer and risk evaluator over one context.
func (e *Engine) analyze(ac *Context) *Analysis {
	sensors := e.analyzeSensors(ac)
	risks, summary := e.evaluateRisks(ac, sensors)

	// Risks surface to the user sorted by severity, high first.
	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Severity.rank() > risks[j].Severity.rank()
	})

	return &Analysis{Sensors: sensors, Risks: risks, Summary: summary}
}
