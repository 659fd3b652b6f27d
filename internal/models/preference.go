package models

// UserPreference stores the training preferences edited on the profile
// page. They pre-fill the /analyze form; free-form values are normalized
// by the engine at request time, not here.
type UserPreference struct {
	BaseModel
	UserID         string  `gorm:"uniqueIndex;not null" json:"user_id"`
	Experience     string  `gorm:"type:varchar(30)" json:"experience"`
	Equipment      string  `gorm:"type:varchar(40)" json:"equipment"`
	TimePerWorkout string  `gorm:"type:varchar(20)" json:"time_per_workout"`
	Weight         float64 `json:"weight"`
	ActivityLevel  string  `gorm:"type:varchar(30)" json:"activity_level"`
	BMICategory    string  `gorm:"type:varchar(20)" json:"bmi_category"`
}
