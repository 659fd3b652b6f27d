package engine

import (
	"sort"
	"strings"
)

// RawPreferences are the free-form user inputs as they arrive from the
// request (or from the stored profile).
type RawPreferences struct {
	Goal          string  `json:"goal"`
	Experience    string  `json:"experience"`
	Equipment     string  `json:"equipment"`
	Time          string  `json:"time"`
	Weight        float64 `json:"weight"`
	Gender        string  `json:"gender"`
	BMICategory   string  `json:"bmiCategory"`
	ActivityLevel string  `json:"activityLevel"`
}

// Preferences are the normalized values the selector and synthesizer
// consume. Equipment is one of gym/home/minimal; TimeSlot matches the
// rule table's time_slot column.
type Preferences struct {
	Goal          string
	Experience    string
	Equipment     string
	TimeSlot      string
	Weight        float64
	Gender        string
	BMICategory   string
	ActivityLevel string
}

const (
	EquipmentGym     = "gym"
	EquipmentHome    = "home"
	EquipmentMinimal = "minimal"

	defaultTimeSlot = "30-45"
	defaultWeightKg = 65
)

// timeSlotByPreference maps the frontend "Time per Workout" options onto
// rule-table time slots. Unknown values fall back to defaultTimeSlot.
var timeSlotByPreference = map[string]string{
	"20-30 min": "20-30",
	"30-45 min": "30-45",
	"45-60 min": "45-60",
	"60+ min":   "60+",
}

// NormalizePreferences case-folds and maps the raw values. Defaults:
// recomposition / beginner / gym / 30-45 / 65kg.
func NormalizePreferences(raw RawPreferences) Preferences {
	goal := strings.ToLower(strings.TrimSpace(raw.Goal))
	if goal == "" {
		goal = "recomposition"
	}
	experience := strings.ToLower(strings.TrimSpace(raw.Experience))
	if experience == "" {
		experience = "beginner"
	}

	weight := raw.Weight
	if weight <= 0 {
		weight = defaultWeightKg
	}

	return Preferences{
		Goal:          goal,
		Experience:    experience,
		Equipment:     normalizeEquipment(raw.Equipment),
		TimeSlot:      normalizeTimeSlot(raw.Time),
		Weight:        weight,
		Gender:        strings.ToLower(strings.TrimSpace(raw.Gender)),
		BMICategory:   strings.ToLower(strings.TrimSpace(raw.BMICategory)),
		ActivityLevel: strings.ToLower(strings.TrimSpace(raw.ActivityLevel)),
	}
}

func normalizeEquipment(raw string) string {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "minimal"):
		return EquipmentMinimal
	case strings.Contains(s, "home"):
		return EquipmentHome
	case strings.Contains(s, "gym"):
		return EquipmentGym
	default:
		return EquipmentGym
	}
}

func normalizeTimeSlot(raw string) string {
	if slot, ok := timeSlotByPreference[strings.TrimSpace(raw)]; ok {
		return slot
	}
	return defaultTimeSlot
}

// lookupEquipment maps the normalized equipment onto the rule table's
// equipment column. The table has no minimal rows; minimal users get
// home rows there (the exercise catalog still uses minimal).
func lookupEquipment(equipment string) string {
	if equipment == EquipmentMinimal {
		return EquipmentHome
	}
	return equipment
}

// StrengthLevel buckets a muscle score for the rule-table lookup.
// Independent of the strong/weak tag thresholds.
func (p Policy) StrengthLevel(score float64) string {
	if score < p.LevelWeakBelow {
		return "weak"
	}
	if score < p.LevelModerateBelow {
		return "moderate"
	}
	return "strong"
}

type targetMuscle struct {
	muscle Muscle
	score  float64
}

// targetMuscles picks the muscles that need rules: every weak-tagged
// muscle, or the FallbackTargets lowest scorers when none is weak.
// Ties keep the canonical muscle order.
func (p Policy) targetMuscles(analysis PhysiqueAnalysis) []targetMuscle {
	var targets []targetMuscle
	for _, m := range Muscles {
		if score := analysis.Score(m); score <= p.WeakTagMax {
			targets = append(targets, targetMuscle{muscle: m, score: score})
		}
	}
	if len(targets) > 0 {
		return targets
	}

	all := make([]targetMuscle, 0, len(Muscles))
	for _, m := range Muscles {
		all = append(all, targetMuscle{muscle: m, score: analysis.Score(m)})
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score < all[j].score
	})
	if len(all) > p.FallbackTargets {
		all = all[:p.FallbackTargets]
	}
	return all
}

// SelectRules picks one rule per target muscle using the tiered fallback
// match, then deduplicates by rule id preserving selection order. With a
// non-empty table the result is never empty.
func (e *Engine) SelectRules(analysis PhysiqueAnalysis, prefs Preferences) []PlanRule {
	overall := analysis.Rating.OverallScore

	var rules []PlanRule
	seen := make(map[int]bool)

	for _, target := range e.Policy.targetMuscles(analysis) {
		rule := e.selectRuleForMuscle(target.muscle, target.score, overall, prefs)
		if !seen[rule.ID] {
			seen[rule.ID] = true
			rules = append(rules, rule)
		}
	}
	return rules
}

// selectRuleForMuscle evaluates the four match tiers in order; the first
// row of the first non-empty tier wins. Rows keep file order, so the
// tie-break is deterministic.
func (e *Engine) selectRuleForMuscle(m Muscle, score, overall float64, prefs Preferences) PlanRule {
	level := e.Policy.StrengthLevel(score)
	equipment := lookupEquipment(prefs.Equipment)
	candidates := e.Rules.ForMuscle(string(m))

	// Tier 1: full match including time slot and overall score range.
	for _, r := range candidates {
		if r.StrengthLevel == level &&
			r.Goal == prefs.Goal &&
			r.Experience == prefs.Experience &&
			r.Equipment == equipment &&
			r.TimeSlot == prefs.TimeSlot &&
			r.OverallMin <= overall && overall <= r.OverallMax {
			return r
		}
	}

	// Tier 2: ignore the time slot.
	for _, r := range candidates {
		if r.StrengthLevel == level &&
			r.Goal == prefs.Goal &&
			r.Experience == prefs.Experience &&
			r.Equipment == equipment &&
			r.OverallMin <= overall && overall <= r.OverallMax {
			return r
		}
	}

	// Tier 3: loose match on goal/experience/equipment only.
	for _, r := range candidates {
		if r.Goal == prefs.Goal &&
			r.Experience == prefs.Experience &&
			r.Equipment == equipment {
			return r
		}
	}

	// Tier 4: any rule for the muscle, else the table's first row.
	if len(candidates) > 0 {
		return candidates[0]
	}
	return e.Rules.First()
}
