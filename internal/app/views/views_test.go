package views

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/app/repositories"
	"github.com/wbvaa/portal/internal/app/services"
)

type fixture struct {
	builder *Builder
	root    *services.ViewRoot
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog, err := repositories.EmbeddedCatalog()
	require.NoError(t, err)

	svc := services.NewServices(catalog, services.SessionConfig{
		SlideInterval:   time.Hour,
		LoadingDelay:    time.Hour,
		DefaultLanguage: models.LanguageEnglish,
		Images:          services.ImageURLs{AssetHost: "https://assets.example", ExportPath: "/export?id=", FallbackURL: "https://example.org/f.jpg"},
	}, nil)
	t.Cleanup(svc.Sessions.Close)

	root, err := svc.Sessions.Mount(context.Background())
	require.NoError(t, err)

	b := NewBuilder(svc.Catalog, svc.Translations, svc.Records)
	b.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	return &fixture{builder: b, root: root}
}

func (f *fixture) do(t *testing.T, fn func(c *services.ViewController) error) {
	t.Helper()
	require.NoError(t, f.root.Do(fn))
}

func (f *fixture) render(t *testing.T, category models.Category) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, f.builder.Build(f.root, category)))
	return buf.String()
}

func TestRenderHome(t *testing.T) {
	f := newFixture(t)
	html := f.render(t, "")

	assert.Contains(t, html, `<html lang="en" class="">`)
	assert.Contains(t, html, "Advancing the Veterinary Profession")
	assert.Contains(t, html, `src="https://assets.example/export?id=1qZ3kV9xRm2pLw8NcT4yHs6uJbE0aFdGi"`)
	assert.Contains(t, html, `referrerpolicy="no-referrer"`)
	assert.NotContains(t, html, "crossorigin")
	assert.Contains(t, html, `class="hero-slide active" data-slide="0"`)
	assert.Contains(t, html, "&copy; 2024")
	assert.NotContains(t, html, "⟦", "every key used by the templates is in the catalog")
}

func TestRenderFailedImageAsPlaceholder(t *testing.T) {
	f := newFixture(t)
	_, err := f.root.Images().MarkFailed("vet-day-camp")
	require.NoError(t, err)

	html := f.render(t, "")
	assert.NotContains(t, html, `data-image-id="vet-day-camp"`)
	assert.Contains(t, html, `data-image-id="convention-2023"`)
	assert.Contains(t, html, `<div class="image-placeholder" aria-label="World Veterinary Day Camp">`)
}

func TestRenderLanguageToggleChangesLabelsOnly(t *testing.T) {
	f := newFixture(t)
	f.do(t, func(c *services.ViewController) error { return c.SelectDistrict("bankura") })
	f.do(t, func(c *services.ViewController) error { return c.SetTheme(true) })

	en := f.render(t, "")
	f.do(t, func(c *services.ViewController) error { _, err := c.ToggleLanguage(); return err })
	bn := f.render(t, "")

	assert.Contains(t, en, "Select District")
	assert.Contains(t, bn, "জেলা নির্বাচন করুন")
	assert.NotContains(t, bn, "Select District")
	for _, html := range []string{en, bn} {
		assert.Contains(t, html, `class="dark"`)
		assert.Contains(t, html, "district-item selected")
		assert.Contains(t, html, "Dr. K. Mandal")
	}
}

func TestRenderServicePortal(t *testing.T) {
	f := newFixture(t)
	f.do(t, func(c *services.ViewController) error { return c.Select(models.ViewProfessional) })

	html := f.render(t, "")
	assert.Contains(t, html, `aria-busy="true"`, "skeleton while loading")
	assert.NotContains(t, html, "SR001")
}

func TestRenderServicePortalResults(t *testing.T) {
	f := newFixture(t)
	f.do(t, func(c *services.ViewController) error { return c.Select(models.ViewProfessional) })

	page := f.builder.Build(f.root, models.CategoryTransfer)
	page.State.Loading = false

	tmpl, err := Templates()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, page))
	html := buf.String()

	assert.Contains(t, html, "SR002")
	assert.NotContains(t, html, "SR001")
	assert.Contains(t, html, `class="chip active" href="/?category=Transfer"`)
}

func TestRenderEmptySearch(t *testing.T) {
	f := newFixture(t)
	f.do(t, func(c *services.ViewController) error { return c.SetSearch("no such circular") })

	page := f.builder.Build(f.root, "")
	page.State.View = models.ViewProfessional
	page.Records = f.builder.records.Search(page.State.Search, "")

	tmpl, err := Templates()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, page))
	assert.Contains(t, buf.String(), "No records found matching your search.")
}

func TestRenderUnderConstruction(t *testing.T) {
	f := newFixture(t)
	f.do(t, func(c *services.ViewController) error { return c.Select(models.ViewKnowledge) })

	html := f.render(t, "")
	assert.Contains(t, html, "Section Under Construction")
	assert.Contains(t, html, "<strong>Knowledge Base</strong>")
}

func TestRenderDistrictDetail(t *testing.T) {
	f := newFixture(t)
	f.do(t, func(c *services.ViewController) error { return c.SelectDistrict("kolkata") })

	html := f.render(t, "")
	assert.Contains(t, html, "Kolkata District")
	assert.Contains(t, html, `919876543210"`)
	assert.Contains(t, html, `<span class="avatar">A</span>`)
}

func TestBuildIsPureFunctionOfState(t *testing.T) {
	f := newFixture(t)
	a := f.builder.Build(f.root, "")
	b := f.builder.Build(f.root, "")
	assert.Equal(t, a.State, b.State)
	assert.Equal(t, a.Nav, b.Nav)
	assert.Equal(t, a.Gallery, b.Gallery)
}
