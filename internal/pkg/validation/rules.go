package validation

import (
	"regexp"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// Slug ids used for districts, notices and gallery images
	SlugPattern = `^[a-z0-9][a-z0-9_-]*$`

	// Service record reference ids, e.g. SR001
	RecordIDPattern = `^[A-Z]{2}\d{3,}$`

	// Asset identifiers issued by the image host
	DriveIDPattern = `^[A-Za-z0-9_-]+$`

	// Upper bound on the free-text search
	SearchMaxLength = 200
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Slug     *regexp.Regexp
	RecordID *regexp.Regexp
	DriveID  *regexp.Regexp
}{
	Slug:     regexp.MustCompile(SlugPattern),
	RecordID: regexp.MustCompile(RecordIDPattern),
	DriveID:  regexp.MustCompile(DriveIDPattern),
}

// StringValidation checks a single string value against a set of rules.
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length in characters
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length in characters
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	n := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && n < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && n > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// IsSlug reports whether s is a valid slug id.
func IsSlug(s string) bool {
	return NewStringValidation(s).WithPattern(CompiledPatterns.Slug).Validate()
}

// IsSearchQuery reports whether q is an acceptable search string. Empty is allowed.
func IsSearchQuery(q string) bool {
	return NewStringValidation(q).WithRequired(false).WithMaxLength(SearchMaxLength).Validate()
}
