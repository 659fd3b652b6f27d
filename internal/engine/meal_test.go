package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  float64
	}{
		{"sedentary", 1.2},
		{"lightly active", 1.375},
		{"moderately active", 1.55},
		{"active", 1.725},
		{"very active", 1.9},
		{"", 1.4},
		{"no idea", 1.4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, activityFactor(tt.level), "level %q", tt.level)
	}
}

func TestGoalCalorieCoefficient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(calPerKgFatLoss), goalCalorieCoefficient("fat loss"))
	assert.Equal(t, float64(calPerKgMuscleGain), goalCalorieCoefficient("muscle gain"))
	assert.Equal(t, float64(calPerKgDefault), goalCalorieCoefficient("recomposition"))
}

func TestBuildMealGuide_MacroTargets(t *testing.T) {
	t.Parallel()

	r := rule(1, "chest", "weak", "muscle gain", "beginner", "gym", "30-45", 1, 5)
	r.MealTitle = "Muscle Gain Meal Plan (v1)"
	r.MealDescription = "Small calorie surplus."
	e := engineWithRules(t, r)

	prefs := NormalizePreferences(RawPreferences{
		Goal:          "muscle gain",
		Weight:        70,
		Gender:        "male",
		ActivityLevel: "moderately active",
	})

	guide := e.BuildMealGuide(r, prefs)

	assert.Equal(t, 3906, guide.DailyCalorieTarget)
	assert.Equal(t, "154 g", guide.Macros.Protein)
	assert.Equal(t, "390 g", guide.Macros.Carbs)
	assert.Equal(t, "108 g", guide.Macros.Fats)
	assert.Equal(t, "Muscle Gain Meal Plan (v1)", guide.PlanName)
	assert.Equal(t, "Small calorie surplus.", guide.PlanDescription)

	require.Len(t, guide.Meals, 4)
	assert.Equal(t, "Breakfast", guide.Meals[0].Name)
	assert.Contains(t, guide.Meals[0].Notes, "Muscle Gain Meal Plan (v1)")
}

func TestBuildMealGuide_FemaleFactorLowersCalories(t *testing.T) {
	t.Parallel()

	r := rule(1, "chest", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5)
	e := engineWithRules(t, r)

	male := e.BuildMealGuide(r, NormalizePreferences(RawPreferences{
		Goal: "fat loss", Weight: 70, Gender: "male", ActivityLevel: "sedentary",
	}))
	female := e.BuildMealGuide(r, NormalizePreferences(RawPreferences{
		Goal: "fat loss", Weight: 70, Gender: "female", ActivityLevel: "sedentary",
	}))

	assert.Less(t, female.DailyCalorieTarget, male.DailyCalorieTarget)
	assert.InDelta(t, 0.9*float64(male.DailyCalorieTarget), float64(female.DailyCalorieTarget), 2)
}

func TestBuildMealGuide_ProteinDependsOnGoal(t *testing.T) {
	t.Parallel()

	r := rule(1, "chest", "weak", "fat loss", "beginner", "gym", "30-45", 1, 5)
	e := engineWithRules(t, r)

	fatLoss := e.BuildMealGuide(r, NormalizePreferences(RawPreferences{
		Goal: "fat loss", Weight: 80,
	}))
	gain := e.BuildMealGuide(r, NormalizePreferences(RawPreferences{
		Goal: "muscle gain", Weight: 80,
	}))

	assert.Equal(t, "160 g", fatLoss.Macros.Protein)
	assert.Equal(t, "176 g", gain.Macros.Protein)
}

func TestBuildMealGuide_BMISnackAdjustments(t *testing.T) {
	t.Parallel()

	r := rule(1, "chest", "weak", "recomposition", "beginner", "gym", "30-45", 1, 5)
	e := engineWithRules(t, r)

	snacksOf := func(g MealGuide) MealEntry {
		for _, m := range g.Meals {
			if m.Name == "Snacks" {
				return m
			}
		}
		t.Fatal("no snacks slot")
		return MealEntry{}
	}

	base := snacksOf(e.BuildMealGuide(r, NormalizePreferences(RawPreferences{Weight: 70})))
	under := snacksOf(e.BuildMealGuide(r, NormalizePreferences(RawPreferences{
		Weight: 70, BMICategory: "underweight",
	})))
	over := snacksOf(e.BuildMealGuide(r, NormalizePreferences(RawPreferences{
		Weight: 70, BMICategory: "obese",
	})))

	assert.Len(t, under.Ingredients, len(base.Ingredients)+2)
	assert.Contains(t, under.Ingredients, "Trail mix or dried fruit")

	assert.Contains(t, over.Notes, "Lower-calorie")
	assert.Contains(t, over.Ingredients, "Vegetable sticks with hummus")
	assert.NotContains(t, over.Ingredients, "Protein shake")
}
