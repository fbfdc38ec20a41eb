// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/awesome-answers/models"
)

// Template names
const (
	QuestionNew  = "questions/new"
	QuestionShow = "questions/show"
	ErrorPage    = "error"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer turns a template name and a data context into an HTML response.
// Templates are parsed once; a Renderer is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template against the shared layout.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"ago":          agoString,
		"fieldMessage": fieldMessage,
	}

	layout, err := template.New("base").Funcs(funcs).ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	err = fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path == layoutFile {
			return err
		}

		page, err := layout.Clone()
		if err != nil {
			return err
		}
		if _, err := page.ParseFS(templateFS, path); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		r.pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// HTML renders the named page with data and writes it with the given status.
// The page is rendered into a buffer first so a template failure never
// leaves a half-written response.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	page, ok := r.pages[name]
	if !ok {
		slog.Error("unknown template", "template", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "template", name, "error", err)
	}
}

// Error renders the error page
func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	r.HTML(w, status, ErrorPage, models.ErrorView{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	})
}

func agoString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// fieldMessage turns a field error into a sentence for the form
func fieldMessage(field, rule string) string {
	label := field
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}

	switch rule {
	case models.RuleRequired:
		return label + " is required"
	default:
		return label + " is invalid (" + rule + ")"
	}
}
