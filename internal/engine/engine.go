package engine

import "fmt"

// Engine bundles the immutable lookup data consumed on every request:
// the rule table, the accessory catalog and the scoring policy. Safe
// for concurrent use.
type Engine struct {
	Rules   *RuleTable
	Catalog ExerciseCatalog
	Policy  Policy
}

// NewEngine wires a rule table with the default catalog and policy.
func NewEngine(rules *RuleTable) *Engine {
	return &Engine{
		Rules:   rules,
		Catalog: DefaultCatalog(),
		Policy:  DefaultPolicy(),
	}
}

// Result is everything the engine derives for one request.
type Result struct {
	Analysis    PhysiqueAnalysis
	WorkoutPlan WorkoutPlan
	MealGuide   MealGuide
	Rules       []PlanRule
}

// Analyze runs the full pipeline on already-combined probabilities:
// score, select rules, synthesize the workout plan and the meal guide.
// The meal guide is built from the first selected rule.
func (e *Engine) Analyze(combined LabelProbabilities, prefs Preferences) Result {
	analysis := e.Policy.BuildAnalysis(combined)
	rules := e.SelectRules(analysis, prefs)

	return Result{
		Analysis:    analysis,
		WorkoutPlan: e.BuildWorkoutPlan(rules, analysis, prefs),
		MealGuide:   e.BuildMealGuide(rules[0], prefs),
		Rules:       rules,
	}
}

// ViewTop records the confidence check for one photo view.
type ViewTop struct {
	View           string  `json:"view"`
	TopLabel       string  `json:"topLabel"`
	TopProbability float64 `json:"topProbability"`
	Plausible      bool    `json:"plausible"`
}

// Plausibility is the outcome of the image sanity gate.
type Plausibility struct {
	OK      bool      `json:"ok"`
	Reason  string    `json:"reason,omitempty"`
	Views   []ViewTop `json:"views"`
	MeanTop float64   `json:"meanTopProbability"`
}

// CheckViews gates implausible uploads before any scoring happens. Every
// view's top probability must exceed MinTopProbability and the mean of
// the per-view tops must exceed MinMeanTopProbability. Views keep the
// order they were passed in.
func (p Policy) CheckViews(views []string, predictions []LabelProbabilities) Plausibility {
	result := Plausibility{OK: true, Views: make([]ViewTop, 0, len(predictions))}

	var sum float64
	for i, preds := range predictions {
		view := "unknown"
		if i < len(views) {
			view = views[i]
		}

		label, prob := TopClass(preds)
		plausible := prob > p.MinTopProbability
		if !plausible && result.OK {
			result.OK = false
			result.Reason = fmt.Sprintf(
				"the %s photo could not be recognized as a physique picture (confidence %.2f)",
				view, prob)
		}

		result.Views = append(result.Views, ViewTop{
			View:           view,
			TopLabel:       label,
			TopProbability: prob,
			Plausible:      plausible,
		})
		sum += prob
	}

	if len(predictions) > 0 {
		result.MeanTop = sum / float64(len(predictions))
	}
	if result.OK && result.MeanTop <= p.MinMeanTopProbability {
		result.OK = false
		result.Reason = fmt.Sprintf(
			"overall classifier confidence %.2f is too low; please upload clearer, well-lit photos",
			result.MeanTop)
	}
	return result
}
