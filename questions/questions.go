// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import (
	"context"
	"errors"

	"github.com/danielhkuo/awesome-answers/models"
	"github.com/danielhkuo/awesome-answers/store"
)

// Create validates in and, if it passes, writes exactly one question to s.
//
// Exactly one of the results is meaningful: the stored question, a non-nil
// FieldErrors when the input breaks a rule, or an error for anything else.
// Rule violations reported by the store itself are folded into FieldErrors.
func Create(ctx context.Context, s store.QuestionStore, in models.QuestionInput) (models.Question, models.FieldErrors, error) {
	in = in.Normalize()

	if fe := models.ValidateQuestion(in); fe != nil {
		return models.Question{}, fe, nil
	}

	q, err := s.Create(ctx, models.Question{Title: in.Title, Body: in.Body})

	var verr *store.ValidationError
	if errors.As(err, &verr) {
		return models.Question{}, verr.Fields, nil
	}
	if err != nil {
		return models.Question{}, nil, err
	}

	return q, nil, nil
}
