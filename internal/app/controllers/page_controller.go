package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/app/services"
	"github.com/wbvaa/portal/internal/app/views"
	"github.com/wbvaa/portal/internal/middleware"
	"github.com/wbvaa/portal/internal/pkg/logger"
)

// PageController serves the server-rendered site. Every form posts back to a
// handler that mutates the view root and redirects to the page.
type PageController struct {
	builder *views.Builder
}

// NewPageController creates a new PageController
func NewPageController(builder *views.Builder) *PageController {
	return &PageController{builder: builder}
}

// Index renders the active view of the request's view root
func (pc *PageController) Index(ctx *gin.Context) {
	root := middleware.ViewRootFrom(ctx)

	category, err := models.ParseCategory(ctx.Query("category"))
	if err != nil {
		logger.Debug().Err(err).Msg("Ignoring unknown category filter")
		category = ""
	}

	ctx.Header("Cache-Control", "no-store")
	ctx.HTML(http.StatusOK, views.PageTemplate, pc.builder.Build(root, category))
}

// Navigate switches to the view named in the path
func (pc *PageController) Navigate(ctx *gin.Context) {
	view := models.ViewID(ctx.Param("view"))
	pc.apply(ctx, func(c *services.ViewController) error {
		return c.Select(view)
	})
}

// GoHome returns to the home view
func (pc *PageController) GoHome(ctx *gin.Context) {
	pc.apply(ctx, func(c *services.ViewController) error {
		return c.GoHome()
	})
}

// SelectDistrict opens a district in the district browser
func (pc *PageController) SelectDistrict(ctx *gin.Context) {
	id := ctx.Param("id")
	pc.apply(ctx, func(c *services.ViewController) error {
		return c.SelectDistrict(id)
	})
}

// ToggleLanguage switches between English and Bengali
func (pc *PageController) ToggleLanguage(ctx *gin.Context) {
	pc.apply(ctx, func(c *services.ViewController) error {
		_, err := c.ToggleLanguage()
		return err
	})
}

// ToggleTheme switches between the light and dark theme
func (pc *PageController) ToggleTheme(ctx *gin.Context) {
	pc.apply(ctx, func(c *services.ViewController) error {
		_, err := c.ToggleTheme()
		return err
	})
}

// ToggleMenu opens or closes the mobile menu
func (pc *PageController) ToggleMenu(ctx *gin.Context) {
	pc.apply(ctx, func(c *services.ViewController) error {
		_, err := c.ToggleMenu()
		return err
	})
}

// Search sets the record search and opens the service portal when the query
// is not blank.
func (pc *PageController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	pc.apply(ctx, func(c *services.ViewController) error {
		if err := c.SetSearch(query); err != nil {
			return err
		}
		if strings.TrimSpace(query) == "" {
			return nil
		}
		return c.Select(models.ViewProfessional)
	})
}

func (pc *PageController) apply(ctx *gin.Context, fn func(c *services.ViewController) error) {
	root := middleware.ViewRootFrom(ctx)
	if err := root.Do(fn); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}
