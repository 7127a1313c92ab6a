// Package render turns the agent directory into the landing page markup.
//
// Rendering is a pure function of the directory and the renderer options:
// the same input always yields byte-identical output.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/mtlprog/agenthub/internal/config"
	"github.com/mtlprog/agenthub/internal/directory"
	"github.com/mtlprog/agenthub/internal/domain"
	"github.com/mtlprog/agenthub/internal/static"
)

// cardStagger is the animation delay added per card position.
const cardStagger = 150

// Renderer renders the landing page.
type Renderer struct {
	tmpl     *template.Template
	layout   Layout
	title    string
	tagline  string
	subtitle string
	team     string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLayout sets the spacing density.
func WithLayout(l Layout) Option {
	return func(r *Renderer) { r.layout = l }
}

// WithTitle overrides the page heading.
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// New parses the embedded page template.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		layout:   LayoutComfortable,
		title:    config.ServiceName,
		tagline:  "AI-Powered Operational Intelligence for Azure HPC",
		subtitle: "Your unified gateway to specialized AI agents for GPU procurement, infrastructure monitoring, and project knowledge",
		team:     "Azure HPC & AI Team",
	}
	for _, opt := range opts {
		opt(r)
	}

	if _, err := ParseLayout(string(r.layout)); err != nil {
		return nil, err
	}

	tmpl, err := template.New("page").
		Funcs(template.FuncMap{"icon": iconFunc}).
		Parse(static.PageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

type card struct {
	domain.Agent
	DelayMS int
	IconSVG template.HTML
}

type page struct {
	Title    string
	Tagline  string
	Subtitle string
	Team     string
	Styles   template.CSS
	Layout   layoutClasses
	Cards    []card
}

// Render writes the page for dir to w: one card per agent, in directory order.
func (r *Renderer) Render(w io.Writer, dir *directory.Directory) error {
	lc := r.layout.classes()
	agents := dir.All()

	cards := make([]card, 0, len(agents))
	for i, a := range agents {
		cards = append(cards, card{
			Agent:   a,
			DelayMS: i * cardStagger,
			IconSVG: iconSVG(a.Icon, lc.IconSize),
		})
	}

	data := page{
		Title:    r.title,
		Tagline:  r.tagline,
		Subtitle: r.subtitle,
		Team:     r.team,
		Styles:   template.CSS(static.Styles),
		Layout:   lc,
		Cards:    cards,
	}

	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

// RenderBytes renders the page into memory. A failed render never yields
// partial output.
func (r *Renderer) RenderBytes(dir *directory.Directory) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, dir); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
