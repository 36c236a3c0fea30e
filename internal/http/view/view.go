package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

const (
	Landing      = "landing"
	Home         = "index"
	Upload       = "upload"
	Signup       = "signup"
	Login        = "login"
	LandingAdmin = "landing_admin"
	Admin        = "admin"
	Error        = "error"
)

var pages = []string{Landing, Home, Upload, Signup, Login, LandingAdmin, Admin, Error}

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"lower": strings.ToLower,
}

// Renderer executes the page templates, each one inside the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", page, err)
		}
		templates[page] = t
	}

	return &Renderer{templates: templates}, nil
}

// Render writes the page only when the template executed completely.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %q: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
