package services

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/apperrors"
)

// TranslationService resolves dictionary keys to display text.
type TranslationService struct {
	dict   models.Dictionary
	logger zerolog.Logger

	warned sync.Map
}

// NewTranslationService creates a new translation service over dict
func NewTranslationService(dict models.Dictionary, logger zerolog.Logger) *TranslationService {
	return &TranslationService{dict: dict, logger: logger}
}

// Translate returns the text of key in lang.
func (s *TranslationService) Translate(key string, lang models.Language) (string, error) {
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedLanguage, lang)
	}
	entry, ok := s.dict[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrMissingKey, key)
	}
	return entry.Text(lang), nil
}

// Text is Translate for templates. A missing key renders as a visible
// placeholder and is logged once.
func (s *TranslationService) Text(key string, lang models.Language) string {
	text, err := s.Translate(key, lang)
	if err == nil {
		return text
	}
	if _, seen := s.warned.LoadOrStore(key, struct{}{}); !seen {
		s.logger.Warn().Err(err).Str("key", key).Str("lang", string(lang)).Msg("Untranslated key rendered")
	}
	return Placeholder(key)
}

// Translator binds Text to one language.
func (s *TranslationService) Translator(lang models.Language) func(key string) string {
	return func(key string) string {
		return s.Text(key, lang)
	}
}

// Keys returns the dictionary keys in sorted order.
func (s *TranslationService) Keys() []string {
	return s.dict.Keys()
}

// Placeholder is what a missing key renders as.
func Placeholder(key string) string {
	return "⟦" + key + "⟧"
}
