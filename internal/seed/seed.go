package seed

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/streamline-live/streamline-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run wipes the domain tables and loads the demo dataset: two hosts and
// one admin (password "password123"), five products, four vouchers, and
// three schedules with nested products, vouchers and talking points.
func Run(db *gorm.DB) error {
	if err := clear(db); err != nil {
		return fmt.Errorf("failed to clear existing data: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	siti := models.User{ID: uuid.New(), Username: "siti", Password: string(hash), DisplayName: "Siti Nurhaliza", Role: models.RoleHost}
	rina := models.User{ID: uuid.New(), Username: "rina", Password: string(hash), DisplayName: "Rina Wati", Role: models.RoleHost}
	admin := models.User{ID: uuid.New(), Username: "admin", Password: string(hash), DisplayName: "Admin Streamline", Role: models.RoleAdmin}
	if err := db.Create(&[]models.User{siti, rina, admin}).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	products := []models.Product{
		{ID: uuid.New(), SKU: "GROGLO-SERUM-001", Name: "Groglo Whitening Serum 30ml", DefaultPrice: 199000, Stock: 120},
		{ID: uuid.New(), SKU: "GROGLO-CREAM-001", Name: "Groglo Night Cream 50ml", DefaultPrice: 149000, Stock: 80},
		{ID: uuid.New(), SKU: "GROGLO-TONER-001", Name: "Groglo Rose Toner 100ml", DefaultPrice: 89000, Stock: 200},
		{ID: uuid.New(), SKU: "TKIS-PILLOW-001", Name: "TKIS Memory Foam Pillow", DefaultPrice: 299000, Stock: 45},
		{ID: uuid.New(), SKU: "TKIS-BEDSHEET-001", Name: "TKIS Premium Bedsheet Set", DefaultPrice: 599000, Stock: 30},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	now := time.Now()
	validUntil := now.AddDate(0, 3, 0)
	minPurchase := 50000.0
	bigMinPurchase := 500000.0
	maxDiscount := 50000.0

	vouchers := []models.Voucher{
		{ID: uuid.New(), Code: "GGMG1111", Description: "11% off all Groglo products", DiscountType: models.DiscountPercentage, DiscountValue: 11, MaxDiscountAmount: &maxDiscount, ValidFrom: now, ValidUntil: validUntil, IsActive: true},
		{ID: uuid.New(), Code: "FLASHSALE50", Description: "Free shipping, min. spend Rp 50.000", DiscountType: models.DiscountFixed, DiscountValue: 10000, MinPurchaseAmount: &minPurchase, ValidFrom: now, ValidUntil: validUntil, IsActive: true},
		{ID: uuid.New(), Code: "NEWUSER20", Description: "Rp 20.000 off for new users", DiscountType: models.DiscountFixed, DiscountValue: 20000, ValidFrom: now, ValidUntil: validUntil, IsActive: true},
		{ID: uuid.New(), Code: "CASHBACK100", Description: "Rp 100.000 cashback, min. spend Rp 500.000", DiscountType: models.DiscountFixed, DiscountValue: 100000, MinPurchaseAmount: &bigMinPurchase, ValidFrom: now, ValidUntil: validUntil, IsActive: true},
	}
	if err := db.Create(&vouchers).Error; err != nil {
		return fmt.Errorf("failed to seed vouchers: %w", err)
	}

	// Three demo sessions: today at 10:00, 14:00 and 18:00 local time;
	// the evening one is already acknowledged.
	morning := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location())
	acknowledged := now

	schedules := []models.Schedule{
		{ID: uuid.New(), HostID: siti.ID, Title: "Flash Sale Groglo 11.11!", Platform: models.PlatformShopee, StoreName: "GROGLO_BEAUTY", ScheduledAt: morning, SalesTarget: 5000000},
		{ID: uuid.New(), HostID: siti.ID, Title: "TKIS Skincare Routine Special", Platform: models.PlatformTikTok, StoreName: "TKIS_HOME_LIVING", ScheduledAt: morning.Add(4 * time.Hour), SalesTarget: 3000000},
		{ID: uuid.New(), HostID: rina.ID, Title: "Bedtime Beauty Sale", Platform: models.PlatformShopee, StoreName: "GROGLO_BEAUTY", ScheduledAt: morning.Add(8 * time.Hour), SalesTarget: 7000000, AcknowledgedAt: &acknowledged},
	}
	if err := db.Create(&schedules).Error; err != nil {
		return fmt.Errorf("failed to seed schedules: %w", err)
	}

	scheduleProducts := []models.ScheduleProduct{
		{ID: uuid.New(), ScheduleID: schedules[0].ID, ProductID: products[0].ID, PromoPrice: 99000},
		{ID: uuid.New(), ScheduleID: schedules[0].ID, ProductID: products[1].ID, PromoPrice: 99000},
		{ID: uuid.New(), ScheduleID: schedules[0].ID, ProductID: products[2].ID, PromoPrice: 49000},
		{ID: uuid.New(), ScheduleID: schedules[1].ID, ProductID: products[3].ID, PromoPrice: 199000},
		{ID: uuid.New(), ScheduleID: schedules[1].ID, ProductID: products[4].ID, PromoPrice: 399000},
		{ID: uuid.New(), ScheduleID: schedules[2].ID, ProductID: products[0].ID, PromoPrice: 149000},
		{ID: uuid.New(), ScheduleID: schedules[2].ID, ProductID: products[1].ID, PromoPrice: 119000},
	}
	if err := db.Create(&scheduleProducts).Error; err != nil {
		return fmt.Errorf("failed to seed schedule products: %w", err)
	}

	scheduleVouchers := []models.ScheduleVoucher{
		{ID: uuid.New(), ScheduleID: schedules[0].ID, VoucherID: vouchers[0].ID},
		{ID: uuid.New(), ScheduleID: schedules[0].ID, VoucherID: vouchers[1].ID},
		{ID: uuid.New(), ScheduleID: schedules[1].ID, VoucherID: vouchers[1].ID},
		{ID: uuid.New(), ScheduleID: schedules[1].ID, VoucherID: vouchers[3].ID},
		{ID: uuid.New(), ScheduleID: schedules[2].ID, VoucherID: vouchers[0].ID},
		{ID: uuid.New(), ScheduleID: schedules[2].ID, VoucherID: vouchers[2].ID},
	}
	if err := db.Create(&scheduleVouchers).Error; err != nil {
		return fmt.Errorf("failed to seed schedule vouchers: %w", err)
	}

	talkingPoints := []models.TalkingPoint{
		{ID: uuid.New(), ScheduleID: schedules[0].ID, Text: "Highlight: Groglo Serum is this month's #1 best seller", Order: 1},
		{ID: uuid.New(), ScheduleID: schedules[0].ID, Text: "Promo: buy 2 get 1 free Night Cream for the first 100 buyers", Order: 2},
		{ID: uuid.New(), ScheduleID: schedules[0].ID, Text: "Testimonial: \"My skin started glowing in 7 days!\" - @beauty_lover99", Order: 3},
		{ID: uuid.New(), ScheduleID: schedules[0].ID, Text: "Call to action: use voucher GGMG1111 for an extra discount", Order: 4},
		{ID: uuid.New(), ScheduleID: schedules[1].ID, Text: "The memory foam pillow suits viewers with neck and back pain", Order: 1},
		{ID: uuid.New(), ScheduleID: schedules[1].ID, Text: "Premium bedsheets in 100% Egyptian cotton", Order: 2},
		{ID: uuid.New(), ScheduleID: schedules[1].ID, Text: "Free shipping on every order placed today", Order: 3},
		{ID: uuid.New(), ScheduleID: schedules[2].ID, Text: "Night routine special: serum + night cream bundle", Order: 1},
		{ID: uuid.New(), ScheduleID: schedules[2].ID, Text: "Target: 100 transactions before 21:00 unlocks the mystery gift", Order: 2},
		{ID: uuid.New(), ScheduleID: schedules[2].ID, Text: "Reminder: ask viewers about their skincare concerns", Order: 3},
	}
	if err := db.Create(&talkingPoints).Error; err != nil {
		return fmt.Errorf("failed to seed talking points: %w", err)
	}

	slog.Info("seed completed",
		"users", 3, "products", len(products), "vouchers", len(vouchers), "schedules", len(schedules))
	return nil
}

// clear deletes domain rows in reverse dependency order.
func clear(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.TalkingPoint{},
		&models.ScheduleVoucher{},
		&models.ScheduleProduct{},
		&models.Schedule{},
		&models.Voucher{},
		&models.Product{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
