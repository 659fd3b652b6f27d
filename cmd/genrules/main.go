// Command genrules writes the plan-rules CSV consumed at startup.
// Run it whenever the rule templates change:
//
//	go run ./cmd/genrules -out data/plan_rules.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	muscles        = []string{"chest", "back", "legs", "arms", "abs"}
	strengthLevels = []string{"weak", "moderate", "strong"}
	goals          = []string{"fat loss", "muscle gain", "recomposition"}
	experiences    = []string{"beginner", "intermediate", "advanced"}
	equipments     = []string{"gym", "home"}
	timeSlots      = []string{"20-30", "30-45", "45-60", "60+"}
)

// variationsPerCombo controls how many near-duplicate rows each
// combination gets, so repeated analyses do not always show the exact
// same wording.
const variationsPerCombo = 7

var workoutExtras = []string{
	" Include 1–2 warm-up sets before working sets.",
	" Emphasize full range of motion on every rep.",
	" Track your weights and try to improve weekly.",
	" Keep rests timed with a stopwatch for consistency.",
	" Add a deload week every 4–6 weeks if needed.",
	" Prioritize quality sleep to support recovery.",
	" Maintain good technique, don't just chase weight.",
}

var mealExtras = []string{
	" Aim for 3 main meals plus 1–2 protein-focused snacks.",
	" Drink enough water (2–3L/day) and limit sugary drinks.",
	" Try to keep most meals home-cooked for easier control.",
	" Adjust portions slightly each week based on progress.",
	" Spread protein fairly evenly across all meals.",
	" Plan meals ahead to avoid random snacking.",
	" Include high-fiber foods to keep you full longer.",
}

func scoreRange(level string) (float64, float64) {
	switch level {
	case "weak":
		return 1, 5
	case "moderate":
		return 4, 7
	default:
		return 6, 10
	}
}

func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func workoutTitle(muscle, goal, experience string, variation int) string {
	return fmt.Sprintf("%s %s - %s (v%d)", title(experience), title(muscle), title(goal), variation)
}

func workoutDesc(muscle, goal string, variation int) string {
	base := fmt.Sprintf(
		"Focus on %s with exercises that support %s. Use controlled tempo and progressive overload.",
		muscle, goal)
	return base + workoutExtras[(variation-1)%len(workoutExtras)]
}

func mealTitle(goal string, variation int) string {
	var base string
	switch goal {
	case "fat loss":
		base = "Fat Loss Meal Plan"
	case "muscle gain":
		base = "Muscle Gain Meal Plan"
	default:
		base = "Recomposition Meal Plan"
	}
	return fmt.Sprintf("%s (v%d)", base, variation)
}

func mealDesc(goal string, variation int) string {
	var base string
	switch goal {
	case "fat loss":
		base = "Calorie deficit with high protein, plenty of vegetables and moderate carbs."
	case "muscle gain":
		base = "Small calorie surplus with high protein and good carb timing around workouts."
	default:
		base = "Near-maintenance calories, high protein and balanced carbs/fats."
	}
	return base + mealExtras[(variation-1)%len(mealExtras)]
}

func main() {
	out := flag.String("out", "data/plan_rules.csv", "output path")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "genrules: %v\n", err)
		os.Exit(1)
	}
	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genrules: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"id", "muscle_group", "strength_level", "goal", "experience",
		"equipment", "time_slot", "overall_min_score", "overall_max_score",
		"workout_title", "workout_description", "meal_title", "meal_description",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "genrules: %v\n", err)
		os.Exit(1)
	}

	id := 1
	for _, muscle := range muscles {
		for _, level := range strengthLevels {
			for _, goal := range goals {
				for _, exp := range experiences {
					for _, equip := range equipments {
						for _, slot := range timeSlots {
							smin, smax := scoreRange(level)
							for v := 1; v <= variationsPerCombo; v++ {
								record := []string{
									strconv.Itoa(id),
									muscle,
									level,
									goal,
									exp,
									equip,
									slot,
									strconv.FormatFloat(smin, 'f', -1, 64),
									strconv.FormatFloat(smax, 'f', -1, 64),
									workoutTitle(muscle, goal, exp, v),
									workoutDesc(muscle, goal, v),
									mealTitle(goal, v),
									mealDesc(goal, v),
								}
								if err := w.Write(record); err != nil {
									fmt.Fprintf(os.Stderr, "genrules: %v\n", err)
									os.Exit(1)
								}
								id++
							}
						}
					}
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "genrules: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rules to %s\n", id-1, *out)
}
