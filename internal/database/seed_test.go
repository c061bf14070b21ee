package database_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mobilityworks/roadnet/internal/config"
	"github.com/mobilityworks/roadnet/internal/database"
	"github.com/mobilityworks/roadnet/internal/models"
	"github.com/mobilityworks/roadnet/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func TestSeed(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{SeedPassword: "RoadNetwork@123"}

	if err := database.Seed(cfg, db); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	var customers int64
	db.Model(&models.Customer{}).Count(&customers)
	if customers != 2 {
		t.Errorf("Expected 2 seeded customers, got %d", customers)
	}
	var users int64
	db.Model(&models.User{}).Count(&users)
	if users != 2 {
		t.Errorf("Expected 2 seeded users, got %d", users)
	}

	// The seeded admin can log in with the seed password
	user, err := services.Authenticate(db, "munich_admin", cfg.SeedPassword)
	if err != nil {
		t.Fatalf("Expected seeded admin to authenticate, got %v", err)
	}
	if !user.IsAdmin() {
		t.Error("Expected munich_admin to be an admin")
	}

	// Seeding again is a no-op
	if err := database.Seed(cfg, db); err != nil {
		t.Fatalf("Failed to re-seed: %v", err)
	}
	db.Model(&models.Customer{}).Count(&customers)
	if customers != 2 {
		t.Errorf("Expected seeding to be idempotent, got %d customers", customers)
	}
}
