package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// District is an organizational unit of the association with its committee.
type District struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	MemberCount int       `yaml:"member_count" json:"memberCount"`
	Officers    []Officer `yaml:"officers" json:"officers"`
}

// Officer is a committee member of a district.
type Officer struct {
	Role  string `yaml:"role" json:"role"`
	Name  string `yaml:"name" json:"name"`
	Phone string `yaml:"phone,omitempty" json:"phone,omitempty"`
}

// Abbrev returns the two-letter badge shown next to the district name.
func (d District) Abbrev() string {
	r := []rune(d.Name)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

// HasPhone reports whether the officer can be contacted.
func (o Officer) HasPhone() bool {
	return strings.TrimSpace(o.Phone) != ""
}

// Initial returns the avatar letter: the first letter of the name after any
// honorific such as "Dr.".
func (o Officer) Initial() string {
	name := strings.TrimSpace(o.Name)
	if i := strings.Index(name, ". "); i >= 0 && i <= 3 {
		name = strings.TrimSpace(name[i+2:])
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
