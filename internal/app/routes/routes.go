package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wbvaa/portal/internal/app/controllers"
	"github.com/wbvaa/portal/internal/app/models/dto"
	"github.com/wbvaa/portal/internal/app/views"
	"github.com/wbvaa/portal/internal/middleware"
	"github.com/wbvaa/portal/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	pageController *controllers.PageController,
	stateController *controllers.StateController,
	catalogController *controllers.CatalogController,
	imageController *controllers.ImageController,
	wsHandler *websocket.Handler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	router.StaticFS("/static", views.Static())

	// --- Server-rendered site ---
	// Every page request gets a view root; forms redirect back to "/".
	site := router.Group("")
	site.Use(sessionMiddleware.Attach())
	{
		site.GET("/", pageController.Index)
		site.GET("/search", pageController.Search)
		site.POST("/home", pageController.GoHome)
		site.POST("/nav/:view", pageController.Navigate)
		site.POST("/districts/:id", pageController.SelectDistrict)
		site.POST("/lang", pageController.ToggleLanguage)
		site.POST("/theme", pageController.ToggleTheme)
		site.POST("/menu", pageController.ToggleMenu)
	}

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	v1.GET("/nav", catalogController.GetNavItems)
	v1.GET("/notices", catalogController.GetNotices)
	v1.GET("/records", catalogController.GetRecords)

	districts := v1.Group("/districts")
	{
		districts.GET("", catalogController.GetDistricts)
		districts.GET("/:id", catalogController.GetDistrictByID)
	}

	translations := v1.Group("/translations")
	{
		translations.GET("", catalogController.GetTranslations)
		translations.GET("/:key", catalogController.GetTranslation)
	}

	v1.POST("/session", stateController.CreateSession)

	// --- Session routes ---
	withSession := v1.Group("")
	withSession.Use(sessionMiddleware.Require())
	{
		withSession.DELETE("/session", stateController.DeleteSession)

		state := withSession.Group("/state")
		{
			state.GET("", stateController.GetState)
			state.PUT("/view", stateController.SelectView)
			state.POST("/home", stateController.GoHome)
			state.PUT("/district", stateController.SelectDistrict)
			state.PUT("/language", stateController.SetLanguage)
			state.POST("/language/toggle", stateController.ToggleLanguage)
			state.PUT("/theme", stateController.SetTheme)
			state.POST("/theme/toggle", stateController.ToggleTheme)
			state.PUT("/search", stateController.SetSearch)
			state.POST("/menu/toggle", stateController.ToggleMenu)
		}

		withSession.GET("/gallery", imageController.GetGallery)
		withSession.POST("/images/:id/failed", imageController.ReportFailure)

		// Push channel for slideshow, loading and theme events
		withSession.GET("/ws", wsHandler.HandleConnection)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
