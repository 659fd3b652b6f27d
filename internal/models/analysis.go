package models

import "gorm.io/datatypes"

// Analysis is one saved physique analysis. The per-muscle scores are
// denormalized into columns so history/stats queries never have to parse
// the stored documents.
type Analysis struct {
	BaseModel
	UserID string `gorm:"not null;index" json:"user_id"`

	OverallScore float64 `gorm:"not null" json:"overall_score"`
	ChestScore   float64 `json:"chest_score"`
	AbsScore     float64 `json:"abs_score"`
	ArmsScore    float64 `json:"arms_score"`
	BackScore    float64 `json:"back_score"`
	LegsScore    float64 `json:"legs_score"`

	AnalysisJSON datatypes.JSON `json:"analysis_json"`
	PlansJSON    datatypes.JSON `json:"plans_json"`
}
