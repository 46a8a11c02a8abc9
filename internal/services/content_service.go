package services

import (
	"jobmetric.dev/internal/content"
	"jobmetric.dev/internal/models"
)

// ContentService exposes the read-only record lists that have no lookup
// operations of their own (features, stats, testimonials, blog preview).
type ContentService struct {
	reg *content.Registry
}

// NewContentService creates a new ContentService
func NewContentService(reg *content.Registry) *ContentService {
	return &ContentService{reg: reg}
}

// Features returns the feature list in its original order
func (s *ContentService) Features() []models.FeatureItem {
	return s.reg.Features
}

// Stats returns the stats strip entries in their original order
func (s *ContentService) Stats() []models.Stat {
	return s.reg.Stats
}

// Testimonials returns the testimonial list in its original order
func (s *ContentService) Testimonials() []models.Testimonial {
	return s.reg.Testimonials
}

// Posts returns the blog preview entries in their original order
func (s *ContentService) Posts() []models.BlogPost {
	return s.reg.Posts
}
