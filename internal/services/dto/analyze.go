package dto

import (
	"time"

	"physique_backend/internal/engine"
)

// AnalyzePreferences is the JSON "preferences" form field of the
// analyze request. All fields are optional; the engine applies its
// defaults during normalization.
type AnalyzePreferences struct {
	Goal          string  `json:"goal" validate:"omitempty,max=40"`
	Experience    string  `json:"experience" validate:"omitempty,max=30"`
	Equipment     string  `json:"equipment" validate:"omitempty,max=40"`
	Time          string  `json:"time" validate:"omitempty,max=20"`
	Weight        float64 `json:"weight" validate:"omitempty,gt=0,lt=400"`
	Gender        string  `json:"gender" validate:"omitempty,max=20"`
	BMICategory   string  `json:"bmiCategory" validate:"omitempty,max=20"`
	ActivityLevel string  `json:"activityLevel" validate:"omitempty,max=30"`
}

// Raw converts the DTO into the engine's input type.
func (p AnalyzePreferences) Raw() engine.RawPreferences {
	return engine.RawPreferences{
		Goal:          p.Goal,
		Experience:    p.Experience,
		Equipment:     p.Equipment,
		Time:          p.Time,
		Weight:        p.Weight,
		Gender:        p.Gender,
		BMICategory:   p.BMICategory,
		ActivityLevel: p.ActivityLevel,
	}
}

// RecommenderLabels carries the tabular model's outputs. Both fields
// hold "unavailable" when the recommender could not be reached.
type RecommenderLabels struct {
	ExerciseSchedule string `json:"exerciseSchedule"`
	MealPlan         string `json:"mealPlan"`
}

// AnalyzeResponse is the full analysis payload. Valid is false when the
// uploaded photos failed the plausibility gate; in that case only
// Reason and Views are populated.
type AnalyzeResponse struct {
	Valid  bool             `json:"valid"`
	Reason string           `json:"reason,omitempty"`
	Views  []engine.ViewTop `json:"views,omitempty"`

	AnalysisID  string                   `json:"analysisId,omitempty"`
	Analysis    *engine.PhysiqueAnalysis `json:"analysis,omitempty"`
	WorkoutPlan *engine.WorkoutPlan      `json:"workoutPlan,omitempty"`
	MealGuide   *engine.MealGuide        `json:"mealGuide,omitempty"`
	Recommender *RecommenderLabels       `json:"recommender,omitempty"`
}

// HistoryItem is one saved analysis in list form.
type HistoryItem struct {
	ID           string    `json:"id"`
	OverallScore float64   `json:"overallScore"`
	ChestScore   float64   `json:"chestScore"`
	AbsScore     float64   `json:"absScore"`
	ArmsScore    float64   `json:"armsScore"`
	BackScore    float64   `json:"backScore"`
	LegsScore    float64   `json:"legsScore"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HistoryResponse is a page of saved analyses.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// AnalysisDetail returns one saved analysis with its stored documents.
type AnalysisDetail struct {
	ID           string    `json:"id"`
	OverallScore float64   `json:"overallScore"`
	CreatedAt    time.Time `json:"createdAt"`

	Analysis interface{} `json:"analysis"`
	Plans    interface{} `json:"plans"`
}
