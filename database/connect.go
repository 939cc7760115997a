// file: database/connect.go
package database

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/builders-garden/just-frame-it/models"
)

// DB is the process-wide GORM handle. It is built once at startup and shared
// by every request; GORM's embedded sql.DB does the pooling.
var DB *gorm.DB

func Connect(dsn string) {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// Expire pooled connections before MySQL's wait_timeout can kill them.
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established, pool configured.")
}

// MigrateTables creates or updates every table the service owns.
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.Application{},
		&models.ApplicationMember{},
		&models.Vote{},
		&models.TeamVote{},
		&models.ProgressUpdate{},
		&models.NotificationToken{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
