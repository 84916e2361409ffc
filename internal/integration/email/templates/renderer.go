// Package templates renders the embedded milestone email bodies.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer holds every parsed template, keyed by file name.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// Render executes name.html and name.txt with data. Both must exist.
func (r *Renderer) Render(name string, data any) (string, string, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render %s.html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render %s.txt: %w", name, err)
	}
	return html.String(), text.String(), nil
}

// MilestoneData feeds the milestone template.
type MilestoneData struct {
	UserName  string
	Kind      string
	Message   string
	Level     int
	BadgeName string
	Streak    int
	AppURL    string
}

// Headline is the title line shared by the HTML and text bodies.
func (d MilestoneData) Headline() string {
	switch d.Kind {
	case "level_up":
		return fmt.Sprintf("Nível %d desbloqueado!", d.Level)
	case "badge_unlocked":
		return "Novo badge: " + d.BadgeName
	case "streak_milestone":
		return fmt.Sprintf("%d dias seguidos!", d.Streak)
	default:
		return "Nova conquista!"
	}
}
