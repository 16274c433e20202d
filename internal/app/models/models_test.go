package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbvaa/portal/internal/pkg/apperrors"
)

func TestParseLanguage(t *testing.T) {
	for input, want := range map[string]Language{
		"en":    LanguageEnglish,
		"EN":    LanguageEnglish,
		"en-IN": LanguageEnglish,
		"bn":    LanguageBengali,
		" bn ":  LanguageBengali,
		"bn-BD": LanguageBengali,
	} {
		got, err := ParseLanguage(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"", "fr", "hi", "english", "!!"} {
		_, err := ParseLanguage(input)
		assert.True(t, errors.Is(err, apperrors.ErrUnsupportedLanguage), input)
	}
}

func TestLanguageOther(t *testing.T) {
	assert.Equal(t, LanguageBengali, LanguageEnglish.Other())
	assert.Equal(t, LanguageEnglish, LanguageBengali.Other())
	assert.False(t, Language("fr").Valid())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("transfers")
	require.NoError(t, err)
	assert.Equal(t, CategoryTransfer, c)

	c, err = ParseCategory("")
	require.NoError(t, err)
	assert.Equal(t, Category(""), c)

	_, err = ParseCategory("demotion")
	assert.True(t, errors.Is(err, apperrors.ErrUnknownCategory))
}

func TestOfficerInitialAndDistrictAbbrev(t *testing.T) {
	assert.Equal(t, "S", Officer{Name: "Dr. S. Roy"}.Initial())
	assert.Equal(t, "T", Officer{Name: "Dr. T. Sherpa"}.Initial())
	assert.Equal(t, "M", Officer{Name: "mina das"}.Initial())
	assert.Equal(t, "", Officer{}.Initial())
	assert.True(t, Officer{Phone: "+91 98765 43210"}.HasPhone())
	assert.False(t, Officer{Phone: " "}.HasPhone())

	assert.Equal(t, "BA", District{Name: "Bankura"}.Abbrev())
	assert.Equal(t, "X", District{Name: "x"}.Abbrev())
}

func validCatalog() *Catalog {
	return &Catalog{
		NavItems: []NavItem{
			{ID: ViewHome, LabelEn: "Home", LabelBn: "হোম"},
			{ID: ViewDistricts, LabelEn: "Districts", LabelBn: "জেলাসমূহ"},
		},
		Districts:      []District{{ID: "bankura", Name: "Bankura", MemberCount: 95}},
		Notices:        []Notice{{ID: "1", Title: "Convention", Type: NoticeGeneral}},
		ServiceRecords: []ServiceRecord{{ID: "SR001", Title: "Gradation List", Category: CategoryOrder}},
		GalleryImages:  []GalleryImage{{ID: "img-1", DriveID: "1AbC"}},
		Dictionary:     Dictionary{"heroTitle": {En: "Title", Bn: "শিরোনাম"}},
	}
}

func TestCatalogValidate(t *testing.T) {
	require.NoError(t, validCatalog().Validate())

	c := validCatalog()
	c.Districts = append(c.Districts, District{ID: "bankura"})
	c.ServiceRecords[0].Category = "Demotion"
	c.Dictionary["loading"] = TranslationEntry{En: "Loading"}

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCatalogInvalid))
	assert.Contains(t, err.Error(), `district "bankura"`)
	assert.Contains(t, err.Error(), `unknown category "Demotion"`)
	assert.Contains(t, err.Error(), `dictionary key "loading"`)
}

func TestCatalogLookups(t *testing.T) {
	c := validCatalog()

	d, ok := c.DistrictByID("bankura")
	require.True(t, ok)
	assert.Same(t, &c.Districts[0], d)

	_, ok = c.DistrictByID("howrah")
	assert.False(t, ok)

	_, ok = c.ImageByID("img-1")
	assert.True(t, ok)

	assert.True(t, c.HasView(ViewDistricts))
	assert.False(t, c.HasView(ViewMember))
}
