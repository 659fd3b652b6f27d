package engine

// CatalogExercise is one accessory exercise with its base set count.
type CatalogExercise struct {
	Name string
	Sets int
	Reps string
	Rest string
}

// ExerciseCatalog holds accessory work keyed by equipment mode, then
// muscle. Read-only after construction.
type ExerciseCatalog map[string]map[Muscle][]CatalogExercise

// DefaultCatalog returns the built-in accessory catalog: four exercises
// per muscle for each of the three equipment modes.
func DefaultCatalog() ExerciseCatalog {
	return ExerciseCatalog{
		EquipmentGym: {
			MuscleChest: {
				{Name: "Incline Dumbbell Press", Sets: 3, Reps: "8–12", Rest: "75s"},
				{Name: "Cable Fly", Sets: 3, Reps: "12–15", Rest: "60s"},
				{Name: "Machine Chest Press", Sets: 3, Reps: "10–12", Rest: "60s"},
				{Name: "Weighted Dip", Sets: 3, Reps: "8–10", Rest: "75s"},
			},
			MuscleBack: {
				{Name: "Lat Pulldown", Sets: 3, Reps: "8–12", Rest: "75s"},
				{Name: "Seated Row", Sets: 3, Reps: "10–12", Rest: "75s"},
				{Name: "Single-Arm Dumbbell Row", Sets: 3, Reps: "10–12", Rest: "60s"},
				{Name: "Face Pull", Sets: 3, Reps: "12–15", Rest: "45s"},
			},
			MuscleArms: {
				{Name: "Barbell Curl", Sets: 3, Reps: "8–12", Rest: "60s"},
				{Name: "Triceps Pushdown", Sets: 3, Reps: "10–12", Rest: "60s"},
				{Name: "Hammer Curl", Sets: 3, Reps: "10–12", Rest: "45s"},
				{Name: "Overhead Triceps Extension", Sets: 3, Reps: "10–12", Rest: "60s"},
			},
			MuscleLegs: {
				{Name: "Back Squat", Sets: 3, Reps: "6–10", Rest: "90s"},
				{Name: "Leg Press", Sets: 3, Reps: "10–12", Rest: "75s"},
				{Name: "Romanian Deadlift", Sets: 3, Reps: "8–10", Rest: "90s"},
				{Name: "Leg Curl", Sets: 3, Reps: "10–12", Rest: "60s"},
			},
			MuscleAbs: {
				{Name: "Cable Crunch", Sets: 3, Reps: "12–15", Rest: "45s"},
				{Name: "Plank", Sets: 3, Reps: "30–45s", Rest: "45s"},
				{Name: "Hanging Knee Raise", Sets: 3, Reps: "10–12", Rest: "45s"},
				{Name: "Russian Twist", Sets: 3, Reps: "15–20", Rest: "30s"},
			},
		},
		EquipmentHome: {
			MuscleChest: {
				{Name: "Dumbbell Floor Press", Sets: 3, Reps: "8–12", Rest: "75s"},
				{Name: "Dumbbell Fly", Sets: 3, Reps: "12–15", Rest: "60s"},
				{Name: "Push-Up", Sets: 3, Reps: "12–15", Rest: "60s"},
				{Name: "Incline Push-Up", Sets: 3, Reps: "12–15", Rest: "45s"},
			},
			MuscleBack: {
				{Name: "Bent-Over Dumbbell Row", Sets: 3, Reps: "8–12", Rest: "75s"},
				{Name: "Band Pulldown", Sets: 3, Reps: "12–15", Rest: "60s"},
				{Name: "Reverse Fly", Sets: 3, Reps: "12–15", Rest: "45s"},
				{Name: "Superman Hold", Sets: 3, Reps: "20–30s", Rest: "45s"},
			},
			MuscleArms: {
				{Name: "Dumbbell Curl", Sets: 3, Reps: "8–12", Rest: "60s"},
				{Name: "Bench Dip", Sets: 3, Reps: "10–12", Rest: "60s"},
				{Name: "Concentration Curl", Sets: 3, Reps: "10–12", Rest: "45s"},
				{Name: "Band Pushdown", Sets: 3, Reps: "12–15", Rest: "45s"},
			},
			MuscleLegs: {
				{Name: "Goblet Squat", Sets: 3, Reps: "8–12", Rest: "90s"},
				{Name: "Dumbbell Lunge", Sets: 3, Reps: "10–12", Rest: "75s"},
				{Name: "Single-Leg Romanian Deadlift", Sets: 3, Reps: "8–10", Rest: "60s"},
				{Name: "Standing Calf Raise", Sets: 3, Reps: "15–20", Rest: "45s"},
			},
			MuscleAbs: {
				{Name: "Crunch", Sets: 3, Reps: "12–15", Rest: "45s"},
				{Name: "Plank", Sets: 3, Reps: "30–45s", Rest: "45s"},
				{Name: "Lying Leg Raise", Sets: 3, Reps: "10–12", Rest: "45s"},
				{Name: "Bicycle Crunch", Sets: 3, Reps: "15–20", Rest: "30s"},
			},
		},
		EquipmentMinimal: {
			MuscleChest: {
				{Name: "Push-Up", Sets: 3, Reps: "10–15", Rest: "60s"},
				{Name: "Wide Push-Up", Sets: 3, Reps: "10–15", Rest: "60s"},
				{Name: "Decline Push-Up", Sets: 3, Reps: "8–12", Rest: "60s"},
				{Name: "Chair Dip", Sets: 3, Reps: "10–12", Rest: "60s"},
			},
			MuscleBack: {
				{Name: "Doorframe Row", Sets: 3, Reps: "10–12", Rest: "60s"},
				{Name: "Superman", Sets: 3, Reps: "12–15", Rest: "45s"},
				{Name: "Reverse Snow Angel", Sets: 3, Reps: "12–15", Rest: "45s"},
				{Name: "Towel Row", Sets: 3, Reps: "10–12", Rest: "60s"},
			},
			MuscleArms: {
				{Name: "Diamond Push-Up", Sets: 3, Reps: "8–12", Rest: "60s"},
				{Name: "Chair Dip", Sets: 3, Reps: "10–12", Rest: "60s"},
				{Name: "Towel Curl", Sets: 3, Reps: "10–12", Rest: "45s"},
				{Name: "Pike Push-Up", Sets: 3, Reps: "8–10", Rest: "60s"},
			},
			MuscleLegs: {
				{Name: "Air Squat", Sets: 3, Reps: "15–20", Rest: "60s"},
				{Name: "Walking Lunge", Sets: 3, Reps: "10–12", Rest: "60s"},
				{Name: "Glute Bridge", Sets: 3, Reps: "12–15", Rest: "45s"},
				{Name: "Wall Sit", Sets: 3, Reps: "30–45s", Rest: "60s"},
			},
			MuscleAbs: {
				{Name: "Crunch", Sets: 3, Reps: "12–15", Rest: "45s"},
				{Name: "Plank", Sets: 3, Reps: "30–45s", Rest: "45s"},
				{Name: "Mountain Climber", Sets: 3, Reps: "20–30", Rest: "45s"},
				{Name: "Flutter Kick", Sets: 3, Reps: "20–30", Rest: "30s"},
			},
		},
	}
}
