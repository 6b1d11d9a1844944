// Package views renders the application's HTML pages. Handlers only see the
// Renderer interface; template contents stay behind it.
package views

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

type Templates struct {
	templates *template.Template
}

func New() (*Templates, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Templates{templates: t}, nil
}

func (v *Templates) Render(w http.ResponseWriter, name string, data map[string]any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return v.templates.ExecuteTemplate(w, name+".html", data)
}
