package render

import (
	"strings"

	"jobmetric.dev/internal/models"
)

// The mapping functions below keep record order; the card list is the
// record list, reshaped.

// FeatureCards maps feature records to cards
func FeatureCards(features []models.FeatureItem) []Card {
	cards := make([]Card, 0, len(features))
	for _, f := range features {
		cards = append(cards, Card{
			Title: f.Title,
			Body:  f.Description,
			Icon:  f.Icon,
		})
	}
	return cards
}

// PackageCards maps package records to cards
func PackageCards(packages []models.Package) []Card {
	cards := make([]Card, 0, len(packages))
	for _, p := range packages {
		cards = append(cards, Card{
			Title: p.Name,
			Body:  p.Description,
			Link:  p.Link,
			Badge: p.Badge,
		})
	}
	return cards
}

// ProjectCards maps project records to cards
func ProjectCards(projects []models.Project) []Card {
	cards := make([]Card, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, Card{
			Title: p.Title,
			Body:  p.Description,
			Link:  p.Link,
			Meta:  strings.Join(p.Tags, " · "),
		})
	}
	return cards
}

// StatCards maps stat records to cards. The number stays display text.
func StatCards(stats []models.Stat) []Card {
	cards := make([]Card, 0, len(stats))
	for _, s := range stats {
		cards = append(cards, Card{
			Title: s.Number,
			Body:  s.Description,
			Meta:  s.Label,
		})
	}
	return cards
}

// TestimonialCards maps testimonial records to cards
func TestimonialCards(testimonials []models.Testimonial) []Card {
	cards := make([]Card, 0, len(testimonials))
	for _, t := range testimonials {
		cards = append(cards, Card{
			Title: t.Author,
			Body:  t.Quote,
			Meta:  t.Role,
		})
	}
	return cards
}

// PostCards maps blog preview records to cards
func PostCards(posts []models.BlogPost) []Card {
	cards := make([]Card, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, Card{
			Title: p.Title,
			Body:  p.Excerpt,
			Link:  p.Link,
			Meta:  p.Date,
		})
	}
	return cards
}

// MemberCards maps team records to member cards
func MemberCards(members []models.TeamMember) []MemberCard {
	cards := make([]MemberCard, 0, len(members))
	for _, m := range members {
		cards = append(cards, MemberCard{
			Name:   m.Name,
			Role:   m.Role,
			Email:  m.Email,
			Social: m.Social,
		})
	}
	return cards
}
