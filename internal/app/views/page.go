package views

import (
	"time"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/app/services"
)

// How many items the home page cards preview
const (
	homeNoticeCount   = 2
	homeDistrictCount = 3
)

// NavLink is one entry of the header navigation.
type NavLink struct {
	ID     models.ViewID
	Label  string
	Icon   string
	Active bool
}

// Slide is one hero image.
type Slide struct {
	URL    string
	Active bool
}

// CategoryChip is one filter chip of the service portal.
type CategoryChip struct {
	LabelKey string
	Value    models.Category
	Active   bool
}

// Page is everything the templates read. It is a pure function of the view
// root's state and the catalog.
type Page struct {
	State     services.State
	Nav       []NavLink
	ViewLabel string
	Year      int

	// home
	Slides             []Slide
	Notices            []models.Notice
	Publications       []models.Publication
	DistrictHighlights []models.District
	Gallery            []services.ResolvedImage

	// professional
	Records  []models.ServiceRecord
	Chips    []CategoryChip
	Category models.Category

	// districts
	Districts []models.District
	Selected  *models.District

	translate func(key string) string
}

// T returns the text of a dictionary key in the page's language.
func (p *Page) T(key string) string {
	return p.translate(key)
}

// Lang is the language badge shown on the toggle.
func (p *Page) Lang() string {
	return string(p.State.Language)
}

// IsView reports whether id is the active view.
func (p *Page) IsView(id models.ViewID) bool {
	return p.State.View == id
}

// HasPage reports whether the active view has dedicated content.
func (p *Page) HasPage() bool {
	return p.State.View.HasPage()
}

// Builder assembles pages from services.
type Builder struct {
	catalog      *services.CatalogService
	translations *services.TranslationService
	records      *services.RecordService
	now          func() time.Time
}

// NewBuilder creates a new page builder
func NewBuilder(catalog *services.CatalogService, translations *services.TranslationService, records *services.RecordService) *Builder {
	return &Builder{
		catalog:      catalog,
		translations: translations,
		records:      records,
		now:          time.Now,
	}
}

// Build renders the page model of root. category filters the service portal;
// empty shows every category.
func (b *Builder) Build(root *services.ViewRoot, category models.Category) *Page {
	state := root.Snapshot()
	p := &Page{
		State:     state,
		Year:      b.now().Year(),
		translate: b.translations.Translator(state.Language),
	}

	for _, item := range b.catalog.NavItems() {
		active := item.ID == state.View
		p.Nav = append(p.Nav, NavLink{
			ID:     item.ID,
			Label:  item.Label(state.Language),
			Icon:   item.Icon,
			Active: active,
		})
		if active {
			p.ViewLabel = item.Label(state.Language)
		}
	}

	switch state.View {
	case models.ViewHome:
		for i, url := range b.catalog.HeroSlides() {
			p.Slides = append(p.Slides, Slide{URL: url, Active: i == state.SlideIndex})
		}
		p.Notices = head(b.catalog.Notices(), homeNoticeCount)
		p.DistrictHighlights = head(b.catalog.Districts(), homeDistrictCount)
		p.Publications = b.catalog.Publications()
		p.Gallery = root.Images().ResolveAll()

	case models.ViewProfessional:
		p.Category = category
		p.Records = b.records.Search(state.Search, category)
		p.Chips = []CategoryChip{
			{LabelKey: "filterAll", Active: category == ""},
			{LabelKey: "filterPromotions", Value: models.CategoryPromotion, Active: category == models.CategoryPromotion},
			{LabelKey: "filterTransfers", Value: models.CategoryTransfer, Active: category == models.CategoryTransfer},
		}

	case models.ViewDistricts:
		p.Districts = b.catalog.Districts()
		if state.DistrictID != "" {
			p.Selected, _ = b.catalog.GetDistrict(state.DistrictID)
		}
	}

	return p
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
