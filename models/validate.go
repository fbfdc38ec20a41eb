package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize trims surrounding whitespace so blank values count as missing.
func (in QuestionInput) Normalize() QuestionInput {
	return QuestionInput{
		Title: strings.TrimSpace(in.Title),
		Body:  strings.TrimSpace(in.Body),
	}
}

// ValidateQuestion checks in against the question rules.
// Returns nil when the input is valid.
func ValidateQuestion(in QuestionInput) FieldErrors {
	err := validate.Struct(in.Normalize())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on programmer error (non-struct input)
		return FieldErrors{FieldTitle: err.Error()}
	}

	fe := FieldErrors{}
	for _, v := range verrs {
		fe[strings.ToLower(v.Field())] = v.Tag()
	}
	return fe
}
