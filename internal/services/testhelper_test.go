package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/streamline-live/streamline-backend/internal/config"
	"github.com/streamline-live/streamline-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory SQLite database with the domain schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Voucher{},
		&models.Schedule{},
		&models.ScheduleProduct{},
		&models.ScheduleVoucher{},
		&models.TalkingPoint{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 24 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, username, password, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		ID:          uuid.New(),
		Username:    username,
		Password:    string(hash),
		DisplayName: username + " display",
		Role:        role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createProduct(t *testing.T, db *gorm.DB, sku, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{
		ID:           uuid.New(),
		SKU:          sku,
		Name:         name,
		DefaultPrice: price,
		Stock:        10,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return product
}

func createVoucher(t *testing.T, db *gorm.DB, code string, active bool) models.Voucher {
	t.Helper()
	voucher := models.Voucher{
		ID:            uuid.New(),
		Code:          code,
		Description:   "test voucher " + code,
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
		ValidFrom:     time.Now(),
		ValidUntil:    time.Now().AddDate(0, 1, 0),
		IsActive:      active,
	}
	if err := db.Create(&voucher).Error; err != nil {
		t.Fatalf("failed to create voucher: %v", err)
	}
	return voucher
}

func createSchedule(t *testing.T, db *gorm.DB, hostID uuid.UUID, title string, at time.Time) models.Schedule {
	t.Helper()
	sched := models.Schedule{
		ID:          uuid.New(),
		HostID:      hostID,
		Title:       title,
		Platform:    models.PlatformShopee,
		StoreName:   "GROGLO_BEAUTY",
		ScheduledAt: at,
		SalesTarget: 1000000,
	}
	if err := db.Create(&sched).Error; err != nil {
		t.Fatalf("failed to create schedule: %v", err)
	}
	return sched
}
