package engine

import (
	"fmt"
	"strings"
)

// Macros are daily targets in grams, rendered as strings ("154 g").
type Macros struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fats    string `json:"fats"`
}

// MealEntry is one of the four daily meal slots.
type MealEntry struct {
	Name        string   `json:"name"`
	Notes       string   `json:"notes"`
	Ingredients []string `json:"ingredients"`
}

// MealGuide is the macro-targeted meal guide built from the primary rule.
type MealGuide struct {
	DailyCalorieTarget int         `json:"dailyCalorieTarget"`
	Macros             Macros      `json:"macros"`
	Meals              []MealEntry `json:"meals"`
	PlanName           string      `json:"planName"`
	PlanDescription    string      `json:"planDescription"`
}

// Calorie model: weight (kg) x goal coefficient, scaled by activity level
// and gender. Carbs get 40% of calories at 4 kcal/g, fats 25% at 9 kcal/g.
const (
	calPerKgFatLoss    = 26
	calPerKgMuscleGain = 36
	calPerKgDefault    = 30

	proteinPerKgDefault    = 2.0
	proteinPerKgMuscleGain = 2.2

	carbCalorieShare = 0.4
	fatCalorieShare  = 0.25
	caloriesPerGCarb = 4
	caloriesPerGFat  = 9

	defaultActivityFactor = 1.4
	femaleCalorieFactor   = 0.9
)

// activityFactors are checked in order; "very active" and "moderately
// active" must hit their own buckets before the bare "active" one.
var activityFactors = []struct {
	keyword string
	factor  float64
}{
	{"sedentary", 1.2},
	{"light", 1.375},
	{"very", 1.9},
	{"moderate", 1.55},
	{"active", 1.725},
}

func activityFactor(level string) float64 {
	for _, af := range activityFactors {
		if strings.Contains(level, af.keyword) {
			return af.factor
		}
	}
	return defaultActivityFactor
}

func genderFactor(gender string) float64 {
	if gender == "female" {
		return femaleCalorieFactor
	}
	return 1.0
}

func goalCalorieCoefficient(goal string) float64 {
	switch goal {
	case "fat loss":
		return calPerKgFatLoss
	case "muscle gain":
		return calPerKgMuscleGain
	default:
		return calPerKgDefault
	}
}

// BuildMealGuide derives daily targets and meal slots from the primary
// rule and the normalized preferences.
func (e *Engine) BuildMealGuide(rule PlanRule, prefs Preferences) MealGuide {
	calories := int(prefs.Weight *
		goalCalorieCoefficient(prefs.Goal) *
		activityFactor(prefs.ActivityLevel) *
		genderFactor(prefs.Gender))

	proteinPerKg := proteinPerKgDefault
	if prefs.Goal == "muscle gain" {
		proteinPerKg = proteinPerKgMuscleGain
	}
	protein := int(prefs.Weight * proteinPerKg)
	carbs := int(float64(calories) * carbCalorieShare / caloriesPerGCarb)
	fats := int(float64(calories) * fatCalorieShare / caloriesPerGFat)

	meals := mealSlots(prefs.Goal, rule)
	adjustSnacksForBMI(meals, prefs.BMICategory)

	return MealGuide{
		DailyCalorieTarget: calories,
		Macros: Macros{
			Protein: fmt.Sprintf("%d g", protein),
			Carbs:   fmt.Sprintf("%d g", carbs),
			Fats:    fmt.Sprintf("%d g", fats),
		},
		Meals:           meals,
		PlanName:        rule.MealTitle,
		PlanDescription: rule.MealDescription,
	}
}

// mealSlots returns the four daily slots with goal-specific notes and
// ingredient lists. Breakfast always carries the rule's meal text.
func mealSlots(goal string, rule PlanRule) []MealEntry {
	breakfast := MealEntry{
		Name:  "Breakfast",
		Notes: fmt.Sprintf("%s – %s", rule.MealTitle, rule.MealDescription),
		Ingredients: []string{
			"Oats with whey protein",
			"1–2 whole eggs + egg whites",
			"Fruit (banana or berries)",
		},
	}

	var lunch, dinner, snacks MealEntry
	switch goal {
	case "fat loss":
		lunch = MealEntry{
			Name:  "Lunch",
			Notes: "Lean protein with a controlled carb portion and plenty of vegetables.",
			Ingredients: []string{
				"Grilled chicken or white fish",
				"Small portion of rice or potatoes",
				"Large mixed salad",
			},
		}
		dinner = MealEntry{
			Name:  "Dinner",
			Notes: "Lightest meal of the day; keep carbs low and vegetables high.",
			Ingredients: []string{
				"Lean protein (chicken, fish, tofu)",
				"Minimal carb portion",
				"Plenty of vegetables",
			},
		}
		snacks = MealEntry{
			Name:  "Snacks",
			Notes: "Protein-focused snacks that keep you full without extra calories.",
			Ingredients: []string{
				"Greek yogurt or cottage cheese",
				"Protein shake",
				"Rice cakes",
			},
		}
	case "muscle gain":
		lunch = MealEntry{
			Name:  "Lunch",
			Notes: "Biggest meal of the day: protein plus a generous carb portion.",
			Ingredients: []string{
				"Grilled chicken, beef or fish",
				"Large portion of rice, pasta or potatoes",
				"Mixed vegetables or salad",
			},
		}
		dinner = MealEntry{
			Name:  "Dinner",
			Notes: "Protein and carbs to support recovery from training.",
			Ingredients: []string{
				"Lean protein (chicken, beef, tofu)",
				"Rice, pasta or potatoes",
				"Plenty of vegetables",
			},
		}
		snacks = MealEntry{
			Name:  "Snacks",
			Notes: "Keep snacks protein-focused to support muscle recovery.",
			Ingredients: []string{
				"Greek yogurt or cottage cheese",
				"Protein shake",
				"Nuts or rice cakes",
			},
		}
	default:
		lunch = MealEntry{
			Name:  "Lunch",
			Notes: "Balanced meal with lean protein, carbs and vegetables.",
			Ingredients: []string{
				"Grilled chicken or fish",
				"Rice, pasta or potatoes",
				"Mixed vegetables or salad",
			},
		}
		dinner = MealEntry{
			Name:  "Dinner",
			Notes: "Similar to lunch, slightly lighter on carbs.",
			Ingredients: []string{
				"Lean protein (chicken, beef, tofu)",
				"Smaller carb portion",
				"Plenty of vegetables",
			},
		}
		snacks = MealEntry{
			Name:  "Snacks",
			Notes: "Keep snacks protein-focused to support muscle recovery.",
			Ingredients: []string{
				"Greek yogurt or cottage cheese",
				"Protein shake",
				"Nuts or rice cakes",
			},
		}
	}

	return []MealEntry{breakfast, lunch, dinner, snacks}
}

// adjustSnacksForBMI tweaks the snack slot in place: underweight users
// get extra calorie-dense items, overweight/obese users get a lighter
// replacement list.
func adjustSnacksForBMI(meals []MealEntry, bmiCategory string) {
	for i := range meals {
		if meals[i].Name != "Snacks" {
			continue
		}
		switch bmiCategory {
		case "underweight":
			meals[i].Ingredients = append(meals[i].Ingredients,
				"Trail mix or dried fruit",
				"Whole milk or a calorie-dense smoothie",
			)
		case "overweight", "obese":
			meals[i].Notes = "Lower-calorie snacks; reach for these instead of processed options."
			meals[i].Ingredients = []string{
				"Vegetable sticks with hummus",
				"Sugar-free yogurt",
				"A piece of fruit",
			}
		}
	}
}
