package models

import (
	"fmt"
	"strings"

	"github.com/wbvaa/portal/internal/pkg/apperrors"
	"golang.org/x/text/language"
)

// Language is one of the two display languages of the site.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBengali Language = "bn"
)

// SupportedLanguages lists the languages in toggle order.
func SupportedLanguages() []Language {
	return []Language{LanguageEnglish, LanguageBengali}
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageBengali
}

// Other returns the language the toggle switches to.
func (l Language) Other() Language {
	if l == LanguageBengali {
		return LanguageEnglish
	}
	return LanguageBengali
}

// ParseLanguage parses a BCP 47 tag from request input. Regional variants such
// as "en-IN" resolve to their base language; anything else is rejected.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedLanguage, s)
	}

	base, conf := tag.Base()
	if conf != language.Exact {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedLanguage, s)
	}
	switch Language(base.String()) {
	case LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageBengali:
		return LanguageBengali, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedLanguage, s)
}

// ViewID names a section of the site. Exactly one view is active at a time.
type ViewID string

const (
	ViewHome         ViewID = "home"
	ViewProfessional ViewID = "professional"
	ViewAcademic     ViewID = "academic"
	ViewDistricts    ViewID = "districts"
	ViewKnowledge    ViewID = "knowledge"
	ViewMember       ViewID = "member"
)

// HasPage reports whether the view has dedicated content; the others render
// the under-construction placeholder.
func (v ViewID) HasPage() bool {
	return v == ViewHome || v == ViewProfessional || v == ViewDistricts
}
