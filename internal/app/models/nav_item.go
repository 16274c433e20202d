package models

// NavItem is one entry of the header navigation. Its ID selects the active view.
type NavItem struct {
	ID      ViewID `yaml:"id" json:"id"`
	LabelEn string `yaml:"label_en" json:"labelEn"`
	LabelBn string `yaml:"label_bn" json:"labelBn"`
	Icon    string `yaml:"icon" json:"icon"`
}

// Label returns the label for the given language.
func (n NavItem) Label(lang Language) string {
	if lang == LanguageBengali {
		return n.LabelBn
	}
	return n.LabelEn
}
