// Package view renders the server-side HTML pages. Presentation only; the
// handlers hand it fully prepared data.
package view

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var files embed.FS

type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	tpl, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl}, nil
}

// Render writes the named page. Template failures after headers are sent
// can only be logged.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.tpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[VIEW] render %s: %v", name, err)
	}
}
