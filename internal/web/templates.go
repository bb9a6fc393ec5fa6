package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

func loadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"pct": func(f float64) string {
			return fmt.Sprintf("%.0f%%", f*100)
		},
		"secs": func(f float64) string {
			return fmt.Sprintf("%.1fs", f)
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("render template: " + err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
