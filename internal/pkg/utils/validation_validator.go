package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("mood_label", validateMoodLabel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

var moodLabels = map[string]bool{
	"joyful":     true,
	"calm":       true,
	"neutral":    true,
	"sad":        true,
	"anxious":    true,
	"angry":      true,
	"exhausted":  true,
	"frightened": true,
}

func validateMoodLabel(fl validator.FieldLevel) bool {
	return moodLabels[fl.Field().String()]
}
