package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesHeader = "id,muscle_group,strength_level,goal,experience,equipment,time_slot," +
	"overall_min_score,overall_max_score,workout_title,workout_description,meal_title,meal_description\n"

func writeRulesCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan_rules.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRuleTable(t *testing.T) {
	t.Parallel()

	path := writeRulesCSV(t, rulesHeader+
		`1,chest,weak,fat loss,beginner,gym,30-45,1,5,Beginner Chest - Fat Loss (v1),Focus on chest.,Fat Loss Meal Plan (v1),Calorie deficit.`+"\n"+
		`2,legs,strong,muscle gain,advanced,home,60+,6,10,Advanced Legs - Muscle Gain (v1),Focus on legs.,Muscle Gain Meal Plan (v1),Calorie surplus.`+"\n")

	table, err := LoadRuleTable(path)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 1, table.First().ID)

	chest := table.ForMuscle("chest")
	require.Len(t, chest, 1)
	assert.Equal(t, "Beginner Chest - Fat Loss (v1)", chest[0].WorkoutTitle)
	assert.Equal(t, 1.0, chest[0].OverallMin)
	assert.Equal(t, 5.0, chest[0].OverallMax)

	legs := table.ForMuscle("legs")
	require.Len(t, legs, 1)
	assert.Equal(t, "60+", legs[0].TimeSlot)

	assert.Empty(t, table.ForMuscle("back"))
}

func TestLoadRuleTable_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadRuleTable(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadRuleTable_MissingColumn(t *testing.T) {
	t.Parallel()

	path := writeRulesCSV(t, "id,muscle_group\n1,chest\n")

	_, err := LoadRuleTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestLoadRuleTable_BadScore(t *testing.T) {
	t.Parallel()

	path := writeRulesCSV(t, rulesHeader+
		`1,chest,weak,fat loss,beginner,gym,30-45,low,5,T,D,MT,MD`+"\n")

	_, err := LoadRuleTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overall_min_score")
}

func TestLoadRuleTable_EmptyTable(t *testing.T) {
	t.Parallel()

	path := writeRulesCSV(t, rulesHeader)

	_, err := LoadRuleTable(path)
	assert.ErrorIs(t, err, ErrEmptyRuleTable)
}

func TestNewRuleTable_Empty(t *testing.T) {
	t.Parallel()

	_, err := NewRuleTable(nil)
	assert.ErrorIs(t, err, ErrEmptyRuleTable)
}
