// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render turns template names and data contexts into HTML responses.

# Templates

Templates are embedded in the binary and parsed once by New:

	templates/layout.html          - shared page chrome
	templates/questions/new.html   - creation form (QuestionNew)
	templates/questions/show.html  - question detail (QuestionShow)
	templates/error.html           - error page (ErrorPage)

Each page defines "title" and "content" blocks executed inside "layout".

# Rendering

	renderer.HTML(w, http.StatusOK, render.QuestionNew, models.QuestionFormView{})
	renderer.Error(w, http.StatusNotFound, "Question not found")

Output is buffered, so a failing template produces a plain 500 instead of a
truncated page.

# Template Functions

  - ago: humanized relative time ("3 minutes ago")
  - fieldMessage: "title", "required" → "Title is required"
*/
package render
