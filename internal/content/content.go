// Package content loads the site's display records from JSON files and
// validates them before anything renders. Services receive the registry
// explicitly; nothing reads content from package-level state.
package content

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"

	"jobmetric.dev/internal/models"
)

// Registry holds every record list the site renders from. It is filled once
// at startup and treated as read-only afterwards.
type Registry struct {
	Features     []models.FeatureItem
	Packages     []models.Package
	Projects     []models.Project
	Stats        []models.Stat
	Team         []models.TeamMember
	Testimonials []models.Testimonial
	Posts        []models.BlogPost
}

// Load reads all content files from dir and validates required fields.
func Load(dir string) (*Registry, error) {
	var reg Registry

	if err := readList(dir, "features.json", &reg.Features); err != nil {
		return nil, err
	}
	if err := readList(dir, "packages.json", &reg.Packages); err != nil {
		return nil, err
	}
	if err := readList(dir, "projects.json", &reg.Projects); err != nil {
		return nil, err
	}
	if err := readList(dir, "stats.json", &reg.Stats); err != nil {
		return nil, err
	}
	if err := readList(dir, "team.json", &reg.Team); err != nil {
		return nil, err
	}
	if err := readList(dir, "testimonials.json", &reg.Testimonials); err != nil {
		return nil, err
	}
	if err := readList(dir, "blog.json", &reg.Posts); err != nil {
		return nil, err
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	return &reg, nil
}

// readList reads one JSON file into the given slice pointer
func readList(dir, name string, v any) error {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", name)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "could not parse %s", name)
	}

	return nil
}

// Validate checks that every record carries its required fields. A record
// with a missing required field would render a card with a visual gap, so
// it is rejected at load time instead.
func (r *Registry) Validate() error {
	for i, f := range r.Features {
		if f.Title == "" || f.Description == "" || f.Icon == "" {
			return errors.Errorf("features.json: record %d is missing a required field", i)
		}
	}
	for i, p := range r.Packages {
		if p.Name == "" || p.Description == "" || p.Link == "" || p.Badge == "" {
			return errors.Errorf("packages.json: record %d is missing a required field", i)
		}
	}
	for i, p := range r.Projects {
		if p.ID == "" || p.Title == "" || p.Description == "" || p.Link == "" {
			return errors.Errorf("projects.json: record %d is missing a required field", i)
		}
	}
	for i, s := range r.Stats {
		if s.Number == "" || s.Label == "" || s.Description == "" {
			return errors.Errorf("stats.json: record %d is missing a required field", i)
		}
	}
	for i, m := range r.Team {
		if m.Name == "" || m.Role == "" || m.Email == "" {
			return errors.Errorf("team.json: record %d is missing a required field", i)
		}
	}
	for i, t := range r.Testimonials {
		if t.Quote == "" || t.Author == "" || t.Role == "" {
			return errors.Errorf("testimonials.json: record %d is missing a required field", i)
		}
	}
	for i, p := range r.Posts {
		if p.Title == "" || p.Excerpt == "" || p.Link == "" || p.Date == "" {
			return errors.Errorf("blog.json: record %d is missing a required field", i)
		}
	}

	return nil
}
