package models

// FeatureItem represents one capability highlighted on the home page
type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // emoji
}

// Package represents one published package shown in the showcase
type Package struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"` // route path to the package docs
	Badge       string `json:"badge"`
}

// Project represents an open-source project card
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags,omitempty"`
}

// Stat is a single entry in the stats strip. Number is display text,
// not a parsed value ("50+" stays "50+").
type Stat struct {
	Number      string `json:"number"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// SocialLinks holds per-platform handles; every platform is optional
type SocialLinks struct {
	GitHub    string `json:"github,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// TeamMember represents one person on the team page
type TeamMember struct {
	Name   string      `json:"name"`
	Role   string      `json:"role"`
	Email  string      `json:"email"`
	Social SocialLinks `json:"social,omitempty"`
	IsLead bool        `json:"is_lead,omitempty"`
}

// TeamGroups is the team roster split by the lead flag.
// Both groups keep the original relative order of the roster.
type TeamGroups struct {
	Leads      []TeamMember `json:"leads"`
	Developers []TeamMember `json:"developers"`
}

// Testimonial is a quote shown on the home page
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// BlogPost is one entry in the blog preview section
type BlogPost struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Link    string `json:"link"`
	Date    string `json:"date"`
}
