package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"scorekeeper/models"

	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages and their template files; every page is parsed together with the
// shared layout so it can fill the content block
var pageFiles = []string{
	"home.html",
	"game.html",
	"how_to_play.html",
	"scores.html",
	"login.html",
	"register.html",
}

// pageData is the context handed to every template
type pageData struct {
	User       *models.User
	Flash      string
	Error      string
	Scoreboard *models.ScoreboardData
}

// Renderer renders the embedded HTML templates
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page. Template failures surface as a plain 500
// since there is nothing useful to tell the client.
func (rd *Renderer) Render(w http.ResponseWriter, name string, data pageData) {
	tmpl, ok := rd.pages[name]
	if !ok {
		log.WithField("template", name).Error("Unknown template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		log.WithField("template", name).WithError(err).Error("Failed to render template")
	}
}
