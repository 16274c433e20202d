package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/app/models/dto"
	"github.com/wbvaa/portal/internal/app/services"
	"github.com/wbvaa/portal/internal/middleware"
)

// StateController exposes the view root of the caller's session as JSON.
type StateController struct {
	sessions *middleware.SessionMiddleware
	ttl      time.Duration
}

// NewStateController creates a new StateController. ttl is the lifetime of
// the session cookie.
func NewStateController(sessions *middleware.SessionMiddleware, ttl time.Duration) *StateController {
	return &StateController{sessions: sessions, ttl: ttl}
}

// CreateSession mounts a new view root
// @Summary Start a session
// @Description Mounts a new view root and sets its session cookie
// @Tags session
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.SessionResponse} "Session created"
// @Failure 503 {object} dto.ErrorResponse "Server is shutting down or the session limit is reached"
// @Router /session [post]
func (sc *StateController) CreateSession(ctx *gin.Context) {
	root, err := sc.sessions.Mount(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SessionResponse{
		SessionID: root.ID(),
		ExpiresAt: time.Now().Add(sc.ttl),
		State:     root.Snapshot(),
	}))
}

// DeleteSession unmounts the caller's view root
// @Summary End the session
// @Description Stops the slideshow and pending timers of the session and clears its cookie
// @Tags session
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Session ended"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /session [delete]
func (sc *StateController) DeleteSession(ctx *gin.Context) {
	sc.sessions.Unmount(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Session ended"}))
}

// GetState returns the current view state
// @Summary Get view state
// @Description Returns language, theme, active view, selected district, search text, menu and loading flags, and the slide index
// @Tags state
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.State} "Current state"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /state [get]
func (sc *StateController) GetState(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(middleware.ViewRootFrom(ctx).Snapshot()))
}

// SelectView switches the active view
// @Summary Select view
// @Description Switches to a navigation view and shows the loading indicator for the loading delay
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.SelectViewRequest true "View to show"
// @Success 200 {object} dto.APIResponse{data=services.State} "Updated state"
// @Failure 400 {object} dto.ErrorResponse "Unknown view"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /state/view [put]
func (sc *StateController) SelectView(ctx *gin.Context) {
	var req dto.SelectViewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	sc.apply(ctx, func(c *services.ViewController) error {
		return c.Select(models.ViewID(req.View))
	})
}

// GoHome returns to the home view
// @Summary Go home
// @Description Returns to the home view without the loading indicator
// @Tags state
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.State} "Updated state"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /state/home [post]
func (sc *StateController) GoHome(ctx *gin.Context) {
	sc.apply(ctx, func(c *services.ViewController) error {
		return c.GoHome()
	})
}

// SelectDistrict selects a district
// @Summary Select district
// @Description Selects a district and switches to the districts view
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.SelectDistrictRequest true "District to show"
// @Success 200 {object} dto.APIResponse{data=services.State} "Updated state"
// @Failure 400 {object} dto.ErrorResponse "Invalid district id"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 404 {object} dto.ErrorResponse "District not found"
// @Router /state/district [put]
func (sc *StateController) SelectDistrict(ctx *gin.Context) {
	var req dto.SelectDistrictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	sc.apply(ctx, func(c *services.ViewController) error {
		return c.SelectDistrict(req.DistrictID)
	})
}

// SetLanguage sets the display language
// @Summary Set language
// @Description Sets the display language. Regional tags such as en-IN resolve to their base language.
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.SetLanguageRequest true "Language tag"
// @Success 200 {object} dto.APIResponse{data=services.State} "Updated state"
// @Failure 400 {object} dto.ErrorResponse "Unsupported language"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /state/language [put]
func (sc *StateController) SetLanguage(ctx *gin.Context) {
	var req dto.SetLanguageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	lang, err := models.ParseLanguage(req.Language)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sc.apply(ctx, func(c *services.ViewController) error {
		return c.SetLanguage(lang)
	})
}

// ToggleLanguage switches the display language
// @Summary Toggle language
// @Tags state
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.State} "Updated state"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /state/language/toggle [post]
func (sc *StateController) ToggleLanguage(ctx *gin.Context) {
	sc.apply(ctx, func(c *services.ViewController) error {
		_, err := c.ToggleLanguage()
		return err
	})
}

// SetTheme sets the theme
// @Summary Set theme
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.SetThemeRequest true "Dark theme flag"
// @Success 200 {object} dto.APIResponse{data=services.State} "Updated state"
// @Failure 400 {object} dto.ErrorResponse "Missing flag"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /state/theme [put]
func (sc *StateController) SetTheme(ctx *gin.Context) {
	var req dto.SetThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	sc.apply(ctx, func(c *services.ViewController) error {
		return c.SetTheme(*req.Dark)
	})
}

// ToggleTheme flips the theme
// @Summary Toggle theme
// @Tags state
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.State} "Updated state"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /state/theme/toggle [post]
func (sc *StateController) ToggleTheme(ctx *gin.Context) {
	sc.apply(ctx, func(c *services.ViewController) error {
		_, err := c.ToggleTheme()
		return err
	})
}

// SetSearch sets the service record search
// @Summary Set search
// @Description Sets the free-text search applied to the service records. An empty query shows all records.
// @Tags state
// @Accept json
// @Produce json
// @Param request body dto.SetSearchRequest true "Search text"
// @Success 200 {object} dto.APIResponse{data=services.State} "Updated state"
// @Failure 400 {object} dto.ErrorResponse "Query too long"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /state/search [put]
func (sc *StateController) SetSearch(ctx *gin.Context) {
	var req dto.SetSearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	sc.apply(ctx, func(c *services.ViewController) error {
		return c.SetSearch(req.Query)
	})
}

// ToggleMenu opens or closes the mobile menu
// @Summary Toggle menu
// @Tags state
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.State} "Updated state"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /state/menu/toggle [post]
func (sc *StateController) ToggleMenu(ctx *gin.Context) {
	sc.apply(ctx, func(c *services.ViewController) error {
		_, err := c.ToggleMenu()
		return err
	})
}

func (sc *StateController) apply(ctx *gin.Context, fn func(c *services.ViewController) error) {
	root := middleware.ViewRootFrom(ctx)
	if err := root.Do(fn); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(root.Snapshot()))
}
