package services

import (
	"github.com/wbvaa/portal/internal/app/models"
	"github.com/wbvaa/portal/internal/pkg/logger"
)

// Services holds all the service instances
type Services struct {
	Catalog      *CatalogService
	Translations *TranslationService
	Records      *RecordService
	Sessions     *SessionService
}

// NewServices wires the services over a loaded catalog.
func NewServices(catalog *models.Catalog, sessionConfig SessionConfig, notifier Notifier) *Services {
	return &Services{
		Catalog:      NewCatalogService(catalog),
		Translations: NewTranslationService(catalog.Dictionary, logger.Component("translations")),
		Records:      NewRecordService(catalog.ServiceRecords),
		Sessions:     NewSessionService(catalog, sessionConfig, notifier, logger.Component("sessions")),
	}
}
