package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePreferences_Defaults(t *testing.T) {
	t.Parallel()

	prefs := NormalizePreferences(RawPreferences{})

	assert.Equal(t, "recomposition", prefs.Goal)
	assert.Equal(t, "beginner", prefs.Experience)
	assert.Equal(t, EquipmentGym, prefs.Equipment)
	assert.Equal(t, "30-45", prefs.TimeSlot)
	assert.Equal(t, float64(defaultWeightKg), prefs.Weight)
}

func TestNormalizePreferences_Mapping(t *testing.T) {
	t.Parallel()

	prefs := NormalizePreferences(RawPreferences{
		Goal:          "  Muscle Gain ",
		Experience:    "Advanced",
		Equipment:     "Minimal Equipment",
		Time:          "60+ min",
		Weight:        82,
		Gender:        "Female",
		BMICategory:   "Normal",
		ActivityLevel: "Moderately Active",
	})

	assert.Equal(t, "muscle gain", prefs.Goal)
	assert.Equal(t, "advanced", prefs.Experience)
	assert.Equal(t, EquipmentMinimal, prefs.Equipment)
	assert.Equal(t, "60+", prefs.TimeSlot)
	assert.Equal(t, 82.0, prefs.Weight)
	assert.Equal(t, "female", prefs.Gender)
	assert.Equal(t, "normal", prefs.BMICategory)
	assert.Equal(t, "moderately active", prefs.ActivityLevel)
}

func TestNormalizeEquipment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EquipmentHome, normalizeEquipment("Home Dumbbells"))
	assert.Equal(t, EquipmentGym, normalizeEquipment("Full Gym"))
	assert.Equal(t, EquipmentMinimal, normalizeEquipment("minimal equipment"))
	assert.Equal(t, EquipmentGym, normalizeEquipment("something else"))
}

func TestLookupEquipment_MinimalUsesHomeRows(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EquipmentHome, lookupEquipment(EquipmentMinimal))
	assert.Equal(t, EquipmentGym, lookupEquipment(EquipmentGym))
	assert.Equal(t, EquipmentHome, lookupEquipment(EquipmentHome))
}

func TestStrengthLevel(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	assert.Equal(t, "weak", p.StrengthLevel(3.9))
	assert.Equal(t, "moderate", p.StrengthLevel(4.0))
	assert.Equal(t, "moderate", p.StrengthLevel(6.9))
	assert.Equal(t, "strong", p.StrengthLevel(7.0))
}

// analysisWithScores builds an analysis with fixed per-muscle scores and
// the given overall, bypassing the scorer.
func analysisWithScores(overall float64, scores map[Muscle]float64) PhysiqueAnalysis {
	ma := make(map[Muscle]MuscleScore, len(scores))
	for m, s := range scores {
		ma[m] = MuscleScore{Score: s}
	}
	return PhysiqueAnalysis{
		Rating:         PhysiqueRating{OverallScore: overall},
		MuscleAnalysis: ma,
	}
}

func rule(id int, muscle, level, goal, exp, equip, slot string, min, max float64) PlanRule {
	return PlanRule{
		ID:            id,
		MuscleGroup:   muscle,
		StrengthLevel: level,
		Goal:          goal,
		Experience:    exp,
		Equipment:     equip,
		TimeSlot:      slot,
		OverallMin:    min,
		OverallMax:    max,
		WorkoutTitle:  "Workout",
		MealTitle:     "Meal",
	}
}

func engineWithRules(t *testing.T, rules ...PlanRule) *Engine {
	t.Helper()
	table, err := NewRuleTable(rules)
	require.NoError(t, err)
	return NewEngine(table)
}

func TestSelectRules_WeakMusclesAreTargets(t *testing.T) {
	t.Parallel()

	e := engineWithRules(t,
		rule(1, "chest", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
		rule(2, "legs", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
	)
	analysis := analysisWithScores(4.0, map[Muscle]float64{
		MuscleChest: 2.0, MuscleAbs: 9.0, MuscleArms: 9.0, MuscleBack: 9.0, MuscleLegs: 3.0,
	})
	prefs := NormalizePreferences(RawPreferences{Goal: "fat loss"})

	rules := e.SelectRules(analysis, prefs)

	require.Len(t, rules, 2)
	assert.Equal(t, 1, rules[0].ID)
	assert.Equal(t, 2, rules[1].ID)
}

func TestSelectRules_FallbackToThreeLowest(t *testing.T) {
	t.Parallel()

	e := engineWithRules(t,
		rule(1, "chest", "strong", "recomposition", "beginner", "gym", "30-45", 6, 10),
		rule(2, "abs", "strong", "recomposition", "beginner", "gym", "30-45", 6, 10),
		rule(3, "arms", "strong", "recomposition", "beginner", "gym", "30-45", 6, 10),
		rule(4, "back", "strong", "recomposition", "beginner", "gym", "30-45", 6, 10),
		rule(5, "legs", "strong", "recomposition", "beginner", "gym", "30-45", 6, 10),
	)
	// Nothing weak-tagged; the three lowest scorers become targets, with
	// ties kept in canonical order (abs before back).
	analysis := analysisWithScores(9.0, map[Muscle]float64{
		MuscleChest: 9.5, MuscleAbs: 8.6, MuscleArms: 9.2, MuscleBack: 8.6, MuscleLegs: 8.7,
	})
	prefs := NormalizePreferences(RawPreferences{})

	rules := e.SelectRules(analysis, prefs)

	require.Len(t, rules, 3)
	assert.Equal(t, []int{2, 4, 5}, []int{rules[0].ID, rules[1].ID, rules[2].ID})
}

func TestSelectRuleForMuscle_TierOrder(t *testing.T) {
	t.Parallel()

	// All rows are chest rows. Row 1 only matches loosely (tier 3), row 2
	// matches everything but the time slot (tier 2), row 3 is a full match
	// (tier 1). File order would pick row 1 first, the tiers must not.
	e := engineWithRules(t,
		rule(1, "chest", "strong", "fat loss", "beginner", "gym", "60+", 6, 10),
		rule(2, "chest", "weak", "fat loss", "beginner", "gym", "60+", 1, 5),
		rule(3, "chest", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
	)
	prefs := NormalizePreferences(RawPreferences{Goal: "fat loss", Time: "30-45 min"})

	got := e.selectRuleForMuscle(MuscleChest, 2.0, 3.0, prefs)
	assert.Equal(t, 3, got.ID, "full match wins")

	prefs.TimeSlot = "20-30"
	got = e.selectRuleForMuscle(MuscleChest, 2.0, 3.0, prefs)
	assert.Equal(t, 2, got.ID, "time slot ignored at tier 2")

	got = e.selectRuleForMuscle(MuscleChest, 2.0, 9.0, prefs)
	assert.Equal(t, 1, got.ID, "overall out of range falls to tier 3")
}

func TestSelectRuleForMuscle_GlobalFallback(t *testing.T) {
	t.Parallel()

	e := engineWithRules(t,
		rule(7, "legs", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
	)
	prefs := NormalizePreferences(RawPreferences{})

	// No chest rows at all: tier 4 falls back to the table's first row.
	got := e.selectRuleForMuscle(MuscleChest, 2.0, 3.0, prefs)
	assert.Equal(t, 7, got.ID)
}

func TestSelectRules_DeduplicatesByID(t *testing.T) {
	t.Parallel()

	e := engineWithRules(t,
		rule(1, "chest", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5),
	)
	// Both chest and legs are weak but only one rule exists; it must not
	// appear twice.
	analysis := analysisWithScores(3.0, map[Muscle]float64{
		MuscleChest: 2.0, MuscleAbs: 9.0, MuscleArms: 9.0, MuscleBack: 9.0, MuscleLegs: 3.0,
	})
	prefs := NormalizePreferences(RawPreferences{Goal: "fat loss"})

	rules := e.SelectRules(analysis, prefs)

	require.Len(t, rules, 1)
	assert.Equal(t, 1, rules[0].ID)
}
