package models

import (
	"errors"
	"fmt"

	"github.com/wbvaa/portal/internal/pkg/apperrors"
	"github.com/wbvaa/portal/internal/pkg/validation"
)

// Catalog is the read-only reference data the site renders. It is loaded once
// and never mutated afterwards.
type Catalog struct {
	NavItems       []NavItem       `yaml:"nav_items" json:"navItems"`
	Districts      []District      `yaml:"districts" json:"districts"`
	Notices        []Notice        `yaml:"notices" json:"notices"`
	ServiceRecords []ServiceRecord `yaml:"service_records" json:"serviceRecords"`
	GalleryImages  []GalleryImage  `yaml:"gallery_images" json:"galleryImages"`
	HeroSlides     []string        `yaml:"hero_slides" json:"heroSlides"`
	Publications   []Publication   `yaml:"publications" json:"publications"`
	Dictionary     Dictionary      `yaml:"dictionary" json:"dictionary"`
}

// Validate checks ids and enumerations. All problems are reported at once.
func (c *Catalog) Validate() error {
	var errs []error
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if len(c.NavItems) == 0 {
		add("no navigation items")
	}
	seen := map[string]bool{}
	for _, n := range c.NavItems {
		if n.ID == "" || seen["nav:"+string(n.ID)] {
			add("nav item %q: empty or duplicate id", n.ID)
		}
		seen["nav:"+string(n.ID)] = true
	}
	if !seen["nav:"+string(ViewHome)] || !seen["nav:"+string(ViewDistricts)] {
		add("navigation must include the %q and %q views", ViewHome, ViewDistricts)
	}

	for _, d := range c.Districts {
		if !validation.IsSlug(d.ID) || seen["district:"+d.ID] {
			add("district %q: invalid or duplicate id", d.ID)
		}
		seen["district:"+d.ID] = true
		if d.MemberCount < 0 {
			add("district %q: negative member count", d.ID)
		}
	}

	for _, n := range c.Notices {
		if seen["notice:"+n.ID] {
			add("notice %q: duplicate id", n.ID)
		}
		seen["notice:"+n.ID] = true
		if !n.Type.Valid() {
			add("notice %q: unknown type %q", n.ID, n.Type)
		}
	}

	for _, r := range c.ServiceRecords {
		if r.ID == "" || seen["record:"+r.ID] {
			add("service record %q: empty or duplicate id", r.ID)
		}
		seen["record:"+r.ID] = true
		if !r.Category.Valid() {
			add("service record %q: unknown category %q", r.ID, r.Category)
		}
	}

	for _, g := range c.GalleryImages {
		if !validation.IsSlug(g.ID) || seen["image:"+g.ID] {
			add("gallery image %q: invalid or duplicate id", g.ID)
		}
		seen["image:"+g.ID] = true
		if !validation.NewStringValidation(g.DriveID).WithPattern(validation.CompiledPatterns.DriveID).Validate() {
			add("gallery image %q: invalid asset id", g.ID)
		}
	}

	for key, entry := range c.Dictionary {
		if entry.En == "" || entry.Bn == "" {
			add("dictionary key %q: missing a language", key)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", apperrors.ErrCatalogInvalid, errors.Join(errs...))
}

// DistrictByID returns the district with the given id.
func (c *Catalog) DistrictByID(id string) (*District, bool) {
	for i := range c.Districts {
		if c.Districts[i].ID == id {
			return &c.Districts[i], true
		}
	}
	return nil, false
}

// ImageByID returns the gallery image with the given id.
func (c *Catalog) ImageByID(id string) (*GalleryImage, bool) {
	for i := range c.GalleryImages {
		if c.GalleryImages[i].ID == id {
			return &c.GalleryImages[i], true
		}
	}
	return nil, false
}

// HasView reports whether id is a navigable view.
func (c *Catalog) HasView(id ViewID) bool {
	for _, n := range c.NavItems {
		if n.ID == id {
			return true
		}
	}
	return false
}
