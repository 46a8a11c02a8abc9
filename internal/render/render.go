// Package render turns the site's display records into HTML. A section is a
// titled list of cards, one card per record in record order; pages are fixed
// compositions of sections. Rendering is a pure function of its inputs.
package render

import (
	"html/template"
	"io"

	"github.com/go-faster/errors"

	"jobmetric.dev/internal/models"
)

// Card is the unit every section renders: one card per record
type Card struct {
	Title string
	Body  string
	Icon  string
	Link  string
	Badge string
	Meta  string
}

// Section is a titled, ordered card list
type Section struct {
	ID    string
	Title string
	Cards []Card
}

// Hero holds the banner text at the top of the home page
type Hero struct {
	Title   string
	Tagline string
}

// HomeData is everything the home page renders from
type HomeData struct {
	Hero       Hero
	Sections   []Section
	Newsletter models.NewsletterStatus
}

// MemberCard is one rendered team member. Social icons render only for
// platforms with a handle present.
type MemberCard struct {
	Name   string
	Role   string
	Email  string
	Social models.SocialLinks
}

// TeamData is the partitioned roster the team page renders from
type TeamData struct {
	Leads      []MemberCard
	Developers []MemberCard
	Newsletter models.NewsletterStatus
}

// Renderer executes the parsed site templates
type Renderer struct {
	tmpl *template.Template
}

// New parses the site templates
func New() (*Renderer, error) {
	tmpl, err := template.New("site").Parse(siteTemplates)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse site templates")
	}

	return &Renderer{tmpl: tmpl}, nil
}

// HomePage writes the home page HTML
func (r *Renderer) HomePage(w io.Writer, data HomeData) error {
	if err := r.tmpl.ExecuteTemplate(w, "home", data); err != nil {
		return errors.Wrap(err, "could not render home page")
	}

	return nil
}

// TeamPage writes the team page HTML
func (r *Renderer) TeamPage(w io.Writer, data TeamData) error {
	if err := r.tmpl.ExecuteTemplate(w, "team", data); err != nil {
		return errors.Wrap(err, "could not render team page")
	}

	return nil
}

// SectionHTML renders a single section. The export command and tests use it
// to render sections standalone.
func (r *Renderer) SectionHTML(w io.Writer, s Section) error {
	if err := r.tmpl.ExecuteTemplate(w, "section", s); err != nil {
		return errors.Wrapf(err, "could not render section %q", s.ID)
	}

	return nil
}
