package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/app/models/dto"
	"github.com/wbvaa/portal/internal/app/services"
	"github.com/wbvaa/portal/internal/middleware"
	"github.com/wbvaa/portal/internal/pkg/helpers"
)

// CatalogController serves the site's reference data. None of its routes
// need a session.
type CatalogController struct {
	catalog      *services.CatalogService
	records      *services.RecordService
	translations *services.TranslationService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalog *services.CatalogService, records *services.RecordService, translations *services.TranslationService) *CatalogController {
	return &CatalogController{
		catalog:      catalog,
		records:      records,
		translations: translations,
	}
}

// GetNavItems lists the navigation views
// @Summary List navigation items
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.NavItem} "Navigation items in menu order"
// @Router /nav [get]
func (cc *CatalogController) GetNavItems(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cc.catalog.NavItems()))
}

// GetDistricts lists the district units
// @Summary List districts
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.District} "Districts with their officers"
// @Router /districts [get]
func (cc *CatalogController) GetDistricts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cc.catalog.Districts()))
}

// GetDistrictByID returns one district
// @Summary Get district
// @Tags catalog
// @Produce json
// @Param id path string true "District id"
// @Success 200 {object} dto.APIResponse{data=models.District} "District"
// @Failure 404 {object} dto.ErrorResponse "District not found"
// @Router /districts/{id} [get]
func (cc *CatalogController) GetDistrictByID(ctx *gin.Context) {
	district, err := cc.catalog.GetDistrict(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(district))
}

// GetNotices lists the latest notices
// @Summary List notices
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Notice} "Notices, newest first"
// @Router /notices [get]
func (cc *CatalogController) GetNotices(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cc.catalog.Notices()))
}

// GetRecords lists service records
// @Summary Search service records
// @Description Case-insensitive match of q against the record title or reference id, optionally narrowed to one category
// @Tags catalog
// @Produce json
// @Param q query string false "Search text"
// @Param category query string false "Promotion, Transfer or Order (plural accepted)"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.ServiceRecord} "Matching records"
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /records [get]
func (cc *CatalogController) GetRecords(ctx *gin.Context) {
	var query dto.RecordQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	category, err := models.ParseCategory(query.Category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	records, pagination := helpers.Paginate(cc.records.Search(query.Query, category), page, size)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:    true,
		Data:       records,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetTranslation looks up one dictionary key
// @Summary Translate a key
// @Tags translations
// @Produce json
// @Param key path string true "Dictionary key"
// @Param lang query string false "Language tag (en, bn)" default(en)
// @Success 200 {object} dto.APIResponse{data=dto.TranslationResponse} "Translated text"
// @Failure 400 {object} dto.ErrorResponse "Unsupported language"
// @Failure 404 {object} dto.ErrorResponse "Missing key"
// @Router /translations/{key} [get]
func (cc *CatalogController) GetTranslation(ctx *gin.Context) {
	lang, ok := cc.language(ctx)
	if !ok {
		return
	}

	key := ctx.Param("key")
	text, err := cc.translations.Translate(key, lang)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TranslationResponse{
		Key:      key,
		Language: string(lang),
		Text:     text,
	}))
}

// GetTranslations returns the whole dictionary in one language
// @Summary Get dictionary
// @Tags translations
// @Produce json
// @Param lang query string false "Language tag (en, bn)" default(en)
// @Success 200 {object} dto.APIResponse{data=map[string]string} "Key to text"
// @Failure 400 {object} dto.ErrorResponse "Unsupported language"
// @Router /translations [get]
func (cc *CatalogController) GetTranslations(ctx *gin.Context) {
	lang, ok := cc.language(ctx)
	if !ok {
		return
	}

	keys := cc.translations.Keys()
	texts := make(map[string]string, len(keys))
	for _, key := range keys {
		texts[key] = cc.translations.Text(key, lang)
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(texts))
}

func (cc *CatalogController) language(ctx *gin.Context) (models.Language, bool) {
	var query dto.TranslationQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindError(ctx, err)
		return "", false
	}
	if query.Language == "" {
		return models.LanguageEnglish, true
	}
	lang, err := models.ParseLanguage(query.Language)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return "", false
	}
	return lang, true
}
