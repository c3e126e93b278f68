package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	// pgvector must exist before PhraseEmbedding migrates.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("Error enabling pgvector extension: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Country{},
		&db_models.Phrase{},
		&db_models.PhraseEmbedding{},
		&db_models.PhraseBookmark{},
		&db_models.CountryFavorite{},
		&db_models.Badge{},
		&db_models.UserBadge{},
		&db_models.UserStats{},
		&db_models.PulseTip{},
		&db_models.PulseUpvote{},
		&db_models.PulseReport{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.Transaction{},
		&db_models.UsageEvent{},
	); err != nil {
		log.Printf("Error running migrations: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
	}
	return tx
}

func ReleaseTransaction(tx *gorm.DB, err error) {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			log.Printf("Error rollback transaction: %v", rollbackErr)
		}
		return
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		log.Printf("Error committing transaction: %v", commitErr)
	}
}
