package engine

import (
	"fmt"
	"strconv"
)

// Exercise is one prescribed exercise. Sets/reps/rest are strings to
// allow ranges and time-based entries ("30–45s").
type Exercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

// WorkoutDay is one training day built from one selected rule.
type WorkoutDay struct {
	DayOfWeek    string     `json:"dayOfWeek"`
	TargetMuscle string     `json:"targetMuscle"`
	Warmup       string     `json:"warmup"`
	Exercises    []Exercise `json:"exercises"`
	Cooldown     string     `json:"cooldown"`
	Notes        string     `json:"notes"`
}

// WorkoutPlan is the multi-day plan: one day per selected rule.
type WorkoutPlan struct {
	Plan           []WorkoutDay `json:"plan"`
	FocusedMuscles []string     `json:"focusedMuscles"`
	RulesUsed      []int        `json:"rulesUsed"`
	StepByStep     []string     `json:"stepByStep"`
}

const (
	primaryExerciseSets = 3
	primaryExerciseReps = "8–12"
	primaryExerciseRest = "60–90s"
	maxAccessories      = 4
	minSets             = 2

	dayWarmup   = "5–10 min light cardio + dynamic stretching"
	dayCooldown = "Light stretching for 5–10 minutes"
)

var planStepByStep = []string{
	"Train 3–4 days per week following the days listed.",
	"Always start with the warm-up before your first exercise.",
	"Use a weight where the last 2 reps of each set feel challenging but doable.",
	"Rest 60–90 seconds between sets unless otherwise specified.",
	"Increase the weight slightly once you can hit the top of the rep range with good form.",
	"Finish with the cooldown to help recovery and mobility.",
}

// adjustSets scales a base set count by training experience. Beginners
// drop one set (never below minSets), advanced lifters add one.
func adjustSets(base int, experience string) int {
	switch experience {
	case "beginner":
		if base-1 < minSets {
			return minSets
		}
		return base - 1
	case "advanced":
		return base + 1
	default:
		return base
	}
}

// BuildWorkoutPlan expands the selected rules into concrete days. The
// rule's workout is each day's primary exercise; accessories come from
// the equipment catalog.
func (e *Engine) BuildWorkoutPlan(rules []PlanRule, analysis PhysiqueAnalysis, prefs Preferences) WorkoutPlan {
	days := make([]WorkoutDay, 0, len(rules))
	focused := make([]string, 0, len(rules))
	ruleIDs := make([]int, 0, len(rules))

	for i, rule := range rules {
		muscle := Muscle(rule.MuscleGroup)
		score := analysis.Score(muscle)

		exercises := []Exercise{{
			Name: rule.WorkoutTitle,
			Sets: strconv.Itoa(adjustSets(primaryExerciseSets, prefs.Experience)),
			Reps: primaryExerciseReps,
			Rest: primaryExerciseRest,
		}}

		accessories := e.Catalog[prefs.Equipment][muscle]
		if len(accessories) > maxAccessories {
			accessories = accessories[:maxAccessories]
		}
		for _, acc := range accessories {
			exercises = append(exercises, Exercise{
				Name: acc.Name,
				Sets: strconv.Itoa(adjustSets(acc.Sets, prefs.Experience)),
				Reps: acc.Reps,
				Rest: acc.Rest,
			})
		}

		days = append(days, WorkoutDay{
			DayOfWeek:    fmt.Sprintf("Day %d", i+1),
			TargetMuscle: muscle.Title(),
			Warmup:       dayWarmup,
			Exercises:    exercises,
			Cooldown:     dayCooldown,
			Notes: fmt.Sprintf(
				"%s scored %.1f/10. Focus on controlled technique and progressive overload. %s",
				muscle.Title(), score, rule.WorkoutDescription),
		})

		focused = append(focused, rule.MuscleGroup)
		ruleIDs = append(ruleIDs, rule.ID)
	}

	return WorkoutPlan{
		Plan:           days,
		FocusedMuscles: focused,
		RulesUsed:      ruleIDs,
		StepByStep:     planStepByStep,
	}
}
