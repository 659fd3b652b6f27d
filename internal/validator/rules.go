package validator

import (
	"github.com/go-playground/validator/v10"
)

// knownTimeSlots mirrors the "Time per Workout" options the frontend sends.
// Anything else is accepted downstream with a default, but the signup form
// should only offer these.
var knownTimeSlots = map[string]bool{
	"20-30 min": true,
	"30-45 min": true,
	"45-60 min": true,
	"60+ min":   true,
}

func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return knownTimeSlots[value]
	})
}
