package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wbvaa/portal/internal/app/models/dto"
	"github.com/wbvaa/portal/internal/middleware"
	"github.com/wbvaa/portal/internal/pkg/logger"
)

// ImageController reports gallery images and their load failures for the
// caller's session.
type ImageController struct{}

// NewImageController creates a new ImageController
func NewImageController() *ImageController {
	return &ImageController{}
}

// GetGallery lists the gallery images as this session should display them
// @Summary List gallery images
// @Description Images whose primary source failed to load in this session carry failed=true and the fallback as src
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]services.ResolvedImage} "Gallery images"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Router /gallery [get]
func (ic *ImageController) GetGallery(ctx *gin.Context) {
	root := middleware.ViewRootFrom(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(root.Images().ResolveAll()))
}

// ReportFailure records that an image's primary source failed to load
// @Summary Report image load failure
// @Description Switches the image to its fallback for the rest of the session. Repeated reports are no-ops.
// @Tags gallery
// @Produce json
// @Param id path string true "Gallery image id"
// @Success 200 {object} dto.APIResponse{data=dto.ImageStatusResponse} "Image status"
// @Failure 401 {object} dto.ErrorResponse "No session"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Router /images/{id}/failed [post]
func (ic *ImageController) ReportFailure(ctx *gin.Context) {
	root := middleware.ViewRootFrom(ctx)
	id := ctx.Param("id")

	changed, err := root.Images().MarkFailed(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if changed {
		logger.Debug().Str("sessionID", root.ID()).Str("image", id).Msg("Gallery image switched to fallback")
	}

	resolved, err := root.Images().Get(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ImageStatusResponse{
		ID:      id,
		Src:     resolved.Src(),
		Failed:  resolved.Failed,
		Changed: changed,
	}))
}
