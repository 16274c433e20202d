package middleware

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/logger"
	"github.com/wbvaa/portal/internal/pkg/validation"
)

var registerOnce sync.Once

// RegisterValidators adds the site's custom binding tags to gin's validator.
// It must run before any request is bound and is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			logger.Warn().Msg("Binding validator is not go-playground; custom tags not registered")
			return
		}

		rules := map[string]validator.Func{
			"slug": func(fl validator.FieldLevel) bool {
				return validation.IsSlug(fl.Field().String())
			},
			"sitelang": func(fl validator.FieldLevel) bool {
				_, err := models.ParseLanguage(fl.Field().String())
				return err == nil
			},
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				logger.Error().Err(err).Str("tag", tag).Msg("Failed to register validator")
			}
		}
	})
}
