package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// PlanRule is one row of the static recommendation table.
type PlanRule struct {
	ID            int     `json:"id"`
	MuscleGroup   string  `json:"muscle_group"`
	StrengthLevel string  `json:"strength_level"`
	Goal          string  `json:"goal"`
	Experience    string  `json:"experience"`
	Equipment     string  `json:"equipment"`
	TimeSlot      string  `json:"time_slot"`
	OverallMin    float64 `json:"overall_min_score"`
	OverallMax    float64 `json:"overall_max_score"`

	WorkoutTitle       string `json:"workout_title"`
	WorkoutDescription string `json:"workout_description"`
	MealTitle          string `json:"meal_title"`
	MealDescription    string `json:"meal_description"`
}

// RuleTable is the read-only rule set, loaded once at startup. Rows keep
// file order; selection tie-breaks depend on it. The muscle-group index
// keeps the tier-4 fallback from scanning the whole table.
type RuleTable struct {
	rules    []PlanRule
	byMuscle map[string][]int // indexes into rules, in file order
}

// ErrEmptyRuleTable: an empty table is a configuration error, not a
// per-request condition.
var ErrEmptyRuleTable = errors.New("rule table contains no rules")

// NewRuleTable builds a table from rows already in file order.
func NewRuleTable(rules []PlanRule) (*RuleTable, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyRuleTable
	}

	byMuscle := make(map[string][]int)
	for i, r := range rules {
		byMuscle[r.MuscleGroup] = append(byMuscle[r.MuscleGroup], i)
	}

	return &RuleTable{
		rules:    rules,
		byMuscle: byMuscle,
	}, nil
}

// Len returns the number of rules.
func (t *RuleTable) Len() int { return len(t.rules) }

// First returns the very first row, the global tier-4 fallback.
func (t *RuleTable) First() PlanRule { return t.rules[0] }

// ForMuscle returns all rules for a muscle group in file order.
func (t *RuleTable) ForMuscle(muscle string) []PlanRule {
	idx := t.byMuscle[muscle]
	out := make([]PlanRule, 0, len(idx))
	for _, i := range idx {
		out = append(out, t.rules[i])
	}
	return out
}

var ruleColumns = []string{
	"id",
	"muscle_group",
	"strength_level",
	"goal",
	"experience",
	"equipment",
	"time_slot",
	"overall_min_score",
	"overall_max_score",
	"workout_title",
	"workout_description",
	"meal_title",
	"meal_description",
}

// LoadRuleTable reads the plan-rules CSV. Callers treat any error here as
// fatal: the service must not start without its rule table.
func LoadRuleTable(path string) (*RuleTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plan rules: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read plan rules header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range ruleColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("plan rules csv: missing column %q", name)
		}
	}

	var rules []PlanRule
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read plan rules row: %w", err)
		}

		id, err := strconv.Atoi(record[col["id"]])
		if err != nil {
			return nil, fmt.Errorf("plan rules csv: bad id %q: %w", record[col["id"]], err)
		}
		minScore, err := strconv.ParseFloat(record[col["overall_min_score"]], 64)
		if err != nil {
			return nil, fmt.Errorf("plan rules csv: bad overall_min_score in rule %d: %w", id, err)
		}
		maxScore, err := strconv.ParseFloat(record[col["overall_max_score"]], 64)
		if err != nil {
			return nil, fmt.Errorf("plan rules csv: bad overall_max_score in rule %d: %w", id, err)
		}

		rules = append(rules, PlanRule{
			ID:                 id,
			MuscleGroup:        record[col["muscle_group"]],
			StrengthLevel:      record[col["strength_level"]],
			Goal:               record[col["goal"]],
			Experience:         record[col["experience"]],
			Equipment:          record[col["equipment"]],
			TimeSlot:           record[col["time_slot"]],
			OverallMin:         minScore,
			OverallMax:         maxScore,
			WorkoutTitle:       record[col["workout_title"]],
			WorkoutDescription: record[col["workout_description"]],
			MealTitle:          record[col["meal_title"]],
			MealDescription:    record[col["meal_description"]],
		})
	}

	return NewRuleTable(rules)
}
