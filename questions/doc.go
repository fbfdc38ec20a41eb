// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package questions builds and persists questions from form input.

	q, fieldErrs, err := questions.Create(ctx, s, models.QuestionInput{
		Title: r.PostFormValue("title"),
		Body:  r.PostFormValue("body"),
	})

When fieldErrs is non-nil nothing was written. err is reserved for store
failures that are not rule violations.
*/
package questions
