package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/apperrors"
)

func TestTranslate(t *testing.T) {
	s := NewTranslationService(testCatalog(0).Dictionary, nopLogger)

	text, err := s.Translate("heroTitle", models.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Advancing the Veterinary Profession", text)

	text, err = s.Translate("heroTitle", models.LanguageBengali)
	require.NoError(t, err)
	assert.Equal(t, "ভেটেরিনারি পেশার অগ্রগতি", text)
}

func TestTranslateErrors(t *testing.T) {
	s := NewTranslationService(testCatalog(0).Dictionary, nopLogger)

	_, err := s.Translate("nope", models.LanguageEnglish)
	assert.ErrorIs(t, err, apperrors.ErrMissingKey)

	_, err = s.Translate("heroTitle", models.Language("fr"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedLanguage)
}

func TestTextRendersPlaceholderAndWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	s := NewTranslationService(testCatalog(0).Dictionary, zerolog.New(&buf))

	assert.Equal(t, "⟦missingKey⟧", s.Text("missingKey", models.LanguageEnglish))
	assert.Equal(t, "⟦missingKey⟧", s.Text("missingKey", models.LanguageBengali))
	assert.Equal(t, 1, strings.Count(buf.String(), `"key":"missingKey"`))
	assert.Contains(t, buf.String(), `"level":"warn"`)

	assert.Equal(t, "West Bengal Veterinary Alumni Association", s.Text("footerName", models.LanguageEnglish))
}

func TestTranslatorChangesEveryLabel(t *testing.T) {
	s := NewTranslationService(testCatalog(0).Dictionary, nopLogger)
	en := s.Translator(models.LanguageEnglish)
	bn := s.Translator(models.LanguageBengali)

	for _, key := range s.Keys() {
		assert.NotEqual(t, en(key), bn(key), key)
	}
	assert.Equal(t, []string{"footerName", "heroTitle", "noRecords"}, s.Keys())
}
