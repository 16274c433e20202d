package models

import (
	"fmt"
	"strings"

	"github.com/wbvaa/portal/internal/pkg/apperrors"
)

// Category classifies a service record.
type Category string

const (
	CategoryPromotion Category = "Promotion"
	CategoryTransfer  Category = "Transfer"
	CategoryOrder     Category = "Order"
)

// Categories lists the categories in display order.
func Categories() []Category {
	return []Category{CategoryPromotion, CategoryTransfer, CategoryOrder}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryPromotion, CategoryTransfer, CategoryOrder:
		return true
	}
	return false
}

// ParseCategory accepts the category name case-insensitively, singular or
// plural as used by the filter chips. An empty string means "all".
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, string(c)+"s") {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, s)
}

// ServiceRecord is document metadata listed in the service portal.
type ServiceRecord struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Date     string   `yaml:"date" json:"date"`
	Category Category `yaml:"category" json:"category"`
}
