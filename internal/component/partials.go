package component

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed partials/*.html
var partialFS embed.FS

// Partials renders a named partial with data. A missing partial is an error.
type Partials interface {
	Render(name string, data any) (string, error)
}

type partialSet struct {
	tmpl *template.Template
}

// NewPartials parses the embedded component partials.
func NewPartials() (Partials, error) {
	tmpl, err := template.New("components").Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}).ParseFS(partialFS, "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse component partials: %w", err)
	}
	return &partialSet{tmpl: tmpl}, nil
}

// MustPartials is NewPartials for callers that treat a broken embed as fatal.
func MustPartials() Partials {
	p, err := NewPartials()
	if err != nil {
		panic(err)
	}
	return p
}

func (p *partialSet) Render(name string, data any) (string, error) {
	t := p.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("partial %q not found", name)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
