package models

import "sort"

// TranslationEntry holds the text of one dictionary key in both languages.
type TranslationEntry struct {
	En string `yaml:"en" json:"en"`
	Bn string `yaml:"bn" json:"bn"`
}

// Text returns the entry's text for lang.
func (e TranslationEntry) Text(lang Language) string {
	if lang == LanguageBengali {
		return e.Bn
	}
	return e.En
}

// Dictionary maps semantic string ids to their translations.
type Dictionary map[string]TranslationEntry

// Keys returns the dictionary keys in sorted order.
func (d Dictionary) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
