package dto

// UpdateProfileRequest edits the basic account fields.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Age      int    `json:"age" validate:"omitempty,min=13,max=100"`
	Gender   string `json:"gender" validate:"omitempty,oneof=male female other"`
	Goal     string `json:"goal" validate:"omitempty,max=40"`
}

// UpdatePreferencesRequest edits the stored training preferences that
// pre-fill the analyze form.
type UpdatePreferencesRequest struct {
	Experience     string  `json:"experience" validate:"omitempty,oneof=beginner intermediate advanced"`
	Equipment      string  `json:"equipment" validate:"omitempty,max=40"`
	TimePerWorkout string  `json:"time_per_workout" validate:"omitempty,timeslot"`
	Weight         float64 `json:"weight" validate:"omitempty,gt=0,lt=400"`
	ActivityLevel  string  `json:"activity_level" validate:"omitempty,max=30"`
	BMICategory    string  `json:"bmi_category" validate:"omitempty,oneof=underweight normal overweight obese"`
}

// PreferencesResponse mirrors the stored preference row.
type PreferencesResponse struct {
	Experience     string  `json:"experience"`
	Equipment      string  `json:"equipment"`
	TimePerWorkout string  `json:"time_per_workout"`
	Weight         float64 `json:"weight"`
	ActivityLevel  string  `json:"activity_level"`
	BMICategory    string  `json:"bmi_category"`
}

// ProfileResponse is the account plus its preferences, if any.
type ProfileResponse struct {
	User        UserResponse         `json:"user"`
	Preferences *PreferencesResponse `json:"preferences,omitempty"`
}
