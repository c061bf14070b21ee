package database

import (
	"fmt"
	"log"
	"time"

	"github.com/mobilityworks/roadnet/data"
	"github.com/mobilityworks/roadnet/internal/config"
	"github.com/mobilityworks/roadnet/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a database connection based on the configured DB_TYPE
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBDatabase,
			cfg.DBPort,
		)
		dialector = postgres.Open(dsn)

	case "mysql", "mariadb":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = mysql.Open(dsn)

	case "sqlite":
		// For SQLite, DBDatabase is the file path
		dialector = sqlite.Open(cfg.DBDatabase)

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = sqlserver.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surface unique/foreign-key violations as gorm.ErrDuplicatedKey and
		// gorm.ErrForeignKeyViolated so services can map them to conflicts.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// Bounded pool, recycled periodically
	sqlDB.SetMaxOpenConns(cfg.DBConnectionLimit)
	sqlDB.SetMaxIdleConns(cfg.DBConnectionLimit / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Printf("Connected to %s database: %s", cfg.DBType, cfg.DBDatabase)

	return db, nil
}

// Bootstrap prepares a fresh database for migration. On postgres this
// enables the PostGIS extension the edge geometry column depends on.
func Bootstrap(cfg *config.Config, db *gorm.DB) error {
	switch cfg.DBType {
	case "postgres", "postgresql":
		if err := db.Exec(data.InitdbPostgresExtensions).Error; err != nil {
			return fmt.Errorf("failed to enable postgis: %w", err)
		}
	}
	return nil
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.User{},
		&models.RoadNetwork{},
		&models.Edge{},
	)
}

// Seed inserts the demo customers and their first users when the customer
// table is empty. It is a no-op on any populated database.
func Seed(cfg *config.Config, db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	seeds := []struct {
		customer string
		username string
		email    string
		fullName string
		userType string
	}{
		{"munich city roads department", "munich_admin", "admin@munich.gov", "Munich Admin", models.RoleAdmin},
		{"berlin transport authority", "berlin_admin", "admin@berlin.gov", "Berlin Admin", models.RoleUser},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, s := range seeds {
			customer := models.Customer{Name: s.customer}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}

			user := models.User{
				Username:       s.username,
				Email:          s.email,
				HashedPassword: string(hash),
				FullName:       s.fullName,
				Type:           s.userType,
				IsActive:       true,
				CustomerID:     customer.ID,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded %d demo customers", len(seeds))
		return nil
	})
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
