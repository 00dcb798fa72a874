package database

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"pokernight/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// defaultChipValues seeds the price table on first migration. Admins change
// them afterwards through the chip-price endpoint.
var defaultChipValues = map[string]string{
	"white": "1",
	"red":   "2",
	"green": "10",
	"black": "20",
	"blue":  "50",
}

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, name, port, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db
	log.Println("✅ Connected to database")

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate, err := strconv.ParseBool(autoMigrateEnv)
	if err != nil {
		log.Printf("⚠️  Invalid value for DB_AUTO_MIGRATE: %s\n", autoMigrateEnv)
	}

	if autoMigrate {
		log.Println("🟡 Starting auto-migration...")

		if err := Migrate(DB); err != nil {
			log.Fatal("❌ Failed to auto-migrate database:", err)
		}

		log.Println("✅ Auto migration completed")
	}
}

// Migrate creates the schema and seeds a price row for every chip color
// that does not have one yet. Tests run it against their own handle.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Player{},
		&models.Session{},
		&models.ChipPrice{},
		&models.AuditLogEntry{},
	); err != nil {
		return err
	}
	return seedChipPrices(db)
}

func seedChipPrices(db *gorm.DB) error {
	for _, color := range models.ChipColors {
		value, err := decimal.NewFromString(defaultChipValues[color])
		if err != nil {
			return err
		}
		row := models.ChipPrice{Color: color, Value: value}
		if err := db.Where("color = ?", color).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
