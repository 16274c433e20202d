package dto

// SelectViewRequest switches the active view
type SelectViewRequest struct {
	View string `json:"view" binding:"required,slug"`
}

// SelectDistrictRequest selects a district in the district browser
type SelectDistrictRequest struct {
	DistrictID string `json:"districtId" binding:"required,slug"`
}

// SetLanguageRequest sets the display language
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required,sitelang"`
}

// SetThemeRequest sets the dark theme flag
type SetThemeRequest struct {
	Dark *bool `json:"dark" binding:"required"`
}

// SetSearchRequest sets the free-text record search. An empty query is valid.
type SetSearchRequest struct {
	Query string `json:"query" binding:"max=200"`
}

// RecordQuery is the query string of the record listing. Category accepts the
// singular or plural name in any case.
type RecordQuery struct {
	Query    string `form:"q" binding:"max=200"`
	Category string `form:"category" binding:"max=20"`
}

// TranslationQuery selects the language of a dictionary lookup
type TranslationQuery struct {
	Language string `form:"lang" binding:"omitempty,sitelang"`
}
