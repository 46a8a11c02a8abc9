package services

import (
	"jobmetric.dev/internal/models"
)

// TeamService handles team roster operations
type TeamService struct {
	members []models.TeamMember
}

// NewTeamService creates a new TeamService
func NewTeamService(members []models.TeamMember) *TeamService {
	return &TeamService{members: members}
}

// GetAll returns the full roster in its original order
func (s *TeamService) GetAll() []models.TeamMember {
	return s.members
}

// Grouped splits the roster by the lead flag. Leads come first, then the
// rest; each group keeps the original relative order. Every member lands in
// exactly one group.
func (s *TeamService) Grouped() models.TeamGroups {
	groups := models.TeamGroups{
		Leads:      []models.TeamMember{},
		Developers: []models.TeamMember{},
	}

	for _, m := range s.members {
		if m.IsLead {
			groups.Leads = append(groups.Leads, m)
		} else {
			groups.Developers = append(groups.Developers, m)
		}
	}

	return groups
}
