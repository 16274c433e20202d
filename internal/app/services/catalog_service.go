package services

import (
	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/apperrors"
)

// CatalogService exposes the read-only reference data.
type CatalogService struct {
	catalog *models.Catalog
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog *models.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Catalog returns the underlying catalog. Callers must not modify it.
func (s *CatalogService) Catalog() *models.Catalog {
	return s.catalog
}

// NavItems returns the navigation entries in display order
func (s *CatalogService) NavItems() []models.NavItem {
	return s.catalog.NavItems
}

// Districts returns all districts
func (s *CatalogService) Districts() []models.District {
	return s.catalog.Districts
}

// GetDistrict returns one district by id
func (s *CatalogService) GetDistrict(id string) (*models.District, error) {
	d, ok := s.catalog.DistrictByID(id)
	if !ok {
		return nil, apperrors.NewDistrictNotFoundError(id)
	}
	return d, nil
}

// Notices returns the notice board entries
func (s *CatalogService) Notices() []models.Notice {
	return s.catalog.Notices
}

// HeroSlides returns the hero image URLs
func (s *CatalogService) HeroSlides() []string {
	return s.catalog.HeroSlides
}

// Publications returns the latest publications
func (s *CatalogService) Publications() []models.Publication {
	return s.catalog.Publications
}
