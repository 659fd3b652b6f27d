package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewPreds(top float64) LabelProbabilities {
	return LabelProbabilities{"chest_strong": top, "chest_weak": 1 - top}
}

func TestCheckViews_AllPlausible(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	result := p.CheckViews(
		[]string{"front", "back", "legs"},
		[]LabelProbabilities{viewPreds(0.95), viewPreds(0.9), viewPreds(0.85)},
	)

	assert.True(t, result.OK)
	assert.Empty(t, result.Reason)
	require.Len(t, result.Views, 3)
	assert.Equal(t, "front", result.Views[0].View)
	assert.True(t, result.Views[0].Plausible)
	assert.InDelta(t, 0.9, result.MeanTop, 1e-9)
}

func TestCheckViews_LowSingleView(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	result := p.CheckViews(
		[]string{"front", "back", "legs"},
		[]LabelProbabilities{viewPreds(0.95), viewPreds(0.3), viewPreds(0.9)},
	)

	assert.False(t, result.OK)
	assert.Contains(t, result.Reason, "the back photo could not be recognized")
	assert.Contains(t, result.Reason, "0.30")
	assert.True(t, result.Views[0].Plausible)
	assert.False(t, result.Views[1].Plausible)
}

func TestCheckViews_LowMean(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	// Every view clears the per-view bar but the mean (0.5) does not.
	result := p.CheckViews(
		[]string{"front", "back", "legs"},
		[]LabelProbabilities{viewPreds(0.5), viewPreds(0.5), viewPreds(0.5)},
	)

	assert.False(t, result.OK)
	assert.Contains(t, result.Reason, "overall classifier confidence 0.50 is too low")
	for _, v := range result.Views {
		assert.True(t, v.Plausible)
	}
}

func TestCheckViews_FirstFailureWins(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	result := p.CheckViews(
		[]string{"front", "back"},
		[]LabelProbabilities{viewPreds(0.2), viewPreds(0.1)},
	)

	assert.False(t, result.OK)
	assert.Contains(t, result.Reason, "the front photo")
}

func TestAnalyze_EndToEnd(t *testing.T) {
	t.Parallel()

	e := engineWithRules(t,
		rule(1, "chest", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
		rule(2, "abs", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
		rule(3, "arms", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
		rule(4, "back", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
		rule(5, "legs", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
	)

	// Chest clearly strong, everything else clearly weak.
	combined := probs([]Muscle{MuscleChest}, 0.9, 0.1, 0.1, 0.9)
	prefs := NormalizePreferences(RawPreferences{
		Goal: "fat loss", Weight: 70, ActivityLevel: "sedentary",
	})

	result := e.Analyze(combined, prefs)

	// Four weak muscles cap the boosted overall at 5.0.
	assert.Equal(t, 5.0, result.Analysis.Rating.OverallScore)

	// One rule per weak muscle, and a workout day for each.
	require.Len(t, result.Rules, 4)
	assert.Len(t, result.WorkoutPlan.Plan, 4)
	assert.ElementsMatch(t, []string{"abs", "arms", "back", "legs"}, result.WorkoutPlan.FocusedMuscles)

	// Meal guide built from the first selected rule.
	assert.Equal(t, result.Rules[0].MealTitle, result.MealGuide.PlanName)
	assert.Positive(t, result.MealGuide.DailyCalorieTarget)
}
