package services

import (
	"github.com/go-faster/errors"

	"jobmetric.dev/internal/models"
)

// ErrNotFound is returned by lookup methods when no record matches.
var ErrNotFound = errors.New("not found")

// PackageService handles package showcase operations
type PackageService struct {
	packages []models.Package
}

// NewPackageService creates a new PackageService
func NewPackageService(packages []models.Package) *PackageService {
	return &PackageService{packages: packages}
}

// GetAll returns all packages in their original order
func (s *PackageService) GetAll() []models.Package {
	return s.packages
}

// GetByName returns a specific package by its display name
func (s *PackageService) GetByName(name string) (*models.Package, error) {
	for i := range s.packages {
		if s.packages[i].Name == name {
			return &s.packages[i], nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "package %q", name)
}
