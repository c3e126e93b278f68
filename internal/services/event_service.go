package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

type EventServiceInterface interface {
	// Record writes a usage event. Best-effort: failures are logged and
	// swallowed, never surfaced to the caller.
	Record(accountID string, eventType string, feature string, countryName string)
}

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) EventServiceInterface {
	return &EventService{db: db}
}

func (e *EventService) Record(accountID string, eventType string, feature string, countryName string) {
	event := db_models.UsageEvent{
		AccountID:   accountID,
		EventType:   eventType,
		Feature:     feature,
		CountryName: countryName,
		EventTime:   time.Now().UTC(),
	}
	if err := e.db.Create(&event).Error; err != nil {
		log.Printf("usage event write failed (%s/%s): %v", eventType, feature, err)
	}
}
