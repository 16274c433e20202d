package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wbvaa/portal/internal/app/models/dto"
	"github.com/wbvaa/portal/internal/pkg/apperrors"
	"github.com/wbvaa/portal/internal/pkg/logger"
)

// HandleAPIError maps service errors to status codes and the error envelope.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Details != nil && detail.Details == nil {
		detail.Details = custom.Details
	}
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	msg := func(fallback string) string {
		if errors.As(err, &custom) && custom.StatusMsg != "" {
			return custom.StatusMsg
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrDistrictNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, msg("District not found"))
	case errors.Is(err, apperrors.ErrImageNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, msg("Image not found"))
	case errors.Is(err, apperrors.ErrMissingKey):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeMissingKey, msg("Translation key not found"))
	case errors.Is(err, apperrors.ErrUnknownView):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeUnknownView, msg("Unknown view"))
	case errors.Is(err, apperrors.ErrUnsupportedLanguage):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeUnsupportedLanguage, msg("Unsupported language"))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrUnknownCategory):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, msg("Validation failed")).
			WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrSessionExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredSession, msg("Session expired"))
	case apperrors.Is(err, apperrors.ErrSessionInvalid, apperrors.ErrSessionNotFound):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidSession, msg("Invalid session"))
	case errors.Is(err, apperrors.ErrSessionClosed):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeUnavailable, msg("Server is shutting down"))
	case errors.Is(err, apperrors.ErrSessionLimit):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeUnavailable, msg("Server is busy"))
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleBindError reports a request binding failure as 400.
func HandleBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
