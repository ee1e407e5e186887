// Package web renders named view templates with typed payloads.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/catalog-manager/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

// Render writes the named template with the given payload. A template
// failure after the header is written can only be logged.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Failed to render template", slog.String("template", name), slog.String("error", err.Error()))
	}
}

// RenderError maps the error onto the generic error page. AppError carries
// its own status code; anything else is an internal failure.
func (r *Renderer) RenderError(w http.ResponseWriter, err error) {
	appErr, ok := appErrors.IsAppError(err)
	if !ok {
		appErr = appErrors.InternalError("An unexpected error occurred").WithError(err)
	}

	r.Render(w, appErr.StatusCode, "error", ErrorData{Title: "Error", Status: appErr.StatusCode, Message: appErr.Message})
}
