package render

import (
	"jobmetric.dev/internal/content"
	"jobmetric.dev/internal/models"
)

// siteHero is the fixed banner content. The hero is markup-driven like the
// footer; only the section lists come from the registry.
var siteHero = Hero{ //nolint: gochecknoglobals
	Title:   "JobMetric",
	Tagline: "Open-source Laravel packages for custom fields, flows, metadata and more.",
}

// ComposeHome builds the home page view model. The section sequence is
// fixed: projects showcase, packages showcase, testimonials, blog preview,
// stats, then features, with the hero above and the footer below. Changing
// the page structure means editing this function.
func ComposeHome(reg *content.Registry, newsletter models.NewsletterStatus) HomeData {
	return HomeData{
		Hero: siteHero,
		Sections: []Section{
			{ID: "projects", Title: "Projects", Cards: ProjectCards(reg.Projects)},
			{ID: "packages", Title: "Packages", Cards: PackageCards(reg.Packages)},
			{ID: "testimonials", Title: "What Developers Say", Cards: TestimonialCards(reg.Testimonials)},
			{ID: "blog", Title: "From the Blog", Cards: PostCards(reg.Posts)},
			{ID: "stats", Title: "By the Numbers", Cards: StatCards(reg.Stats)},
			{ID: "features", Title: "Why JobMetric", Cards: FeatureCards(reg.Features)},
		},
		Newsletter: newsletter,
	}
}

// ComposeTeam builds the team page view model from the partitioned roster
func ComposeTeam(groups models.TeamGroups, newsletter models.NewsletterStatus) TeamData {
	return TeamData{
		Leads:      MemberCards(groups.Leads),
		Developers: MemberCards(groups.Developers),
		Newsletter: newsletter,
	}
}
