package services

import (
	"strings"

	"github.com/wbvaa/portal/internal/app/models"
)

// FilterRecords returns the records whose title or id contains query,
// ignoring case, in their original order. An empty query returns records
// as is. The input is never modified.
func FilterRecords(records []models.ServiceRecord, query string) []models.ServiceRecord {
	if query == "" {
		return records
	}

	q := strings.ToLower(query)
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.ID), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCategory keeps the records of one category. An empty category keeps all.
func FilterByCategory(records []models.ServiceRecord, category models.Category) []models.ServiceRecord {
	if category == "" {
		return records
	}

	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// RecordService serves the service portal listing.
type RecordService struct {
	records []models.ServiceRecord
}

// NewRecordService creates a new record service
func NewRecordService(records []models.ServiceRecord) *RecordService {
	return &RecordService{records: records}
}

// All returns every record in catalog order.
func (s *RecordService) All() []models.ServiceRecord {
	return s.records
}

// Search applies the text query and then the category filter.
func (s *RecordService) Search(query string, category models.Category) []models.ServiceRecord {
	return FilterByCategory(FilterRecords(s.records, query), category)
}
