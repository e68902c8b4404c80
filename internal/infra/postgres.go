package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"
	"subly/internal/models/db_models"
)

// enumDDL declares the Postgres enum types the model column tags refer to.
// AutoMigrate emits those type names verbatim, so they have to exist before
// the tables do.
var enumDDL = []string{
	`DO $$ BEGIN CREATE TYPE period_type AS ENUM ('MONTHLY', 'YEARLY'); EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	`DO $$ BEGIN CREATE TYPE payment_status AS ENUM ('pending', 'paid', 'failed', 'refunded'); EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
}

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError so the payment_id unique index surfaces as
	// gorm.ErrDuplicatedKey instead of a raw pq error.
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	for _, ddl := range enumDDL {
		if err := connectionPool.Exec(ddl).Error; err != nil {
			log.Fatalf("Error creating enum types: %v", err)
		}
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.Product{},
		&db_models.Payment{},
		&db_models.Subscription{},
	); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	return connectionPool
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
