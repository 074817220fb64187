package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/streamline-live/streamline-backend/internal/dto"
	"github.com/streamline-live/streamline-backend/internal/models"
	"gorm.io/gorm"
)

var ErrValidation = errors.New("missing required fields")

// ScheduleFilters narrows the admin schedule list. Date is a local
// calendar day (YYYY-MM-DD); HostID and Platform are exact matches.
type ScheduleFilters struct {
	Date     string
	HostID   string
	Platform string
}

// AdminScheduleService owns full CRUD over schedules including their
// nested products, vouchers and talking points. Updates replace the child
// sets wholesale inside one transaction; no partial child state is ever
// visible outside it.
type AdminScheduleService struct {
	db *gorm.DB
}

func NewAdminScheduleService(db *gorm.DB) *AdminScheduleService {
	return &AdminScheduleService{db: db}
}

// ListAll returns schedules matching the filters, ascending by time, each
// with its host summary.
func (s *AdminScheduleService) ListAll(filters ScheduleFilters) ([]dto.AdminScheduleSummary, error) {
	q := s.db.Model(&models.Schedule{}).Preload("Host")

	if filters.Date != "" {
		start, end, err := localDayRange(filters.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date filter", ErrValidation)
		}
		q = q.Where("scheduled_at >= ? AND scheduled_at <= ?", start, end)
	}
	if filters.HostID != "" {
		hostID, err := uuid.Parse(filters.HostID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hostId filter", ErrValidation)
		}
		q = q.Where("host_id = ?", hostID)
	}
	if filters.Platform != "" {
		q = q.Where("platform = ?", filters.Platform)
	}

	var schedules []models.Schedule
	if err := q.Order("scheduled_at ASC").Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	items := make([]dto.AdminScheduleSummary, len(schedules))
	for i, sched := range schedules {
		items[i] = dto.AdminScheduleSummary{
			ScheduleSummary: summarize(&sched),
			Host: dto.HostSummary{
				ID:          sched.Host.ID,
				Username:    sched.Host.Username,
				DisplayName: sched.Host.DisplayName,
			},
		}
	}
	return items, nil
}

// GetByID returns the schedule with all nested relations loaded: host,
// products with their catalog entries, vouchers, ordered talking points.
func (s *AdminScheduleService) GetByID(id uuid.UUID) (*models.Schedule, error) {
	var sched models.Schedule
	err := s.db.
		Preload("Host").
		Preload("Products.Product").
		Preload("Vouchers.Voucher").
		Preload("TalkingPoints", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&sched, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return &sched, nil
}

// Create inserts a schedule together with its three child collections in
// one transaction.
func (s *AdminScheduleService) Create(req *dto.CreateScheduleRequest) (*models.Schedule, error) {
	if req.HostID == "" || req.Title == "" || req.Platform == "" || req.StoreName == "" || req.ScheduledAt == "" {
		return nil, ErrValidation
	}

	hostID, err := uuid.Parse(req.HostID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hostId", ErrValidation)
	}

	scheduledAt, err := parseLocalTime(req.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid scheduledAt", ErrValidation)
	}

	sched := models.Schedule{
		ID:          uuid.New(),
		HostID:      hostID,
		Title:       req.Title,
		Platform:    req.Platform,
		StoreName:   req.StoreName,
		ScheduledAt: scheduledAt,
		SalesTarget: float64(req.SalesTarget),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sched).Error; err != nil {
			return err
		}
		return createChildren(tx, sched.ID, req.Products, req.Vouchers, req.TalkingPoints)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return s.GetByID(sched.ID)
}

// Update applies partial scalar updates and replaces the child sets. The
// transaction covers the delete-all-children, the scalar update and the
// recreate, so a crash or concurrent read never observes a schedule with
// half its children. Children come exclusively from the payload: an update
// that omits products leaves the schedule with zero products.
func (s *AdminScheduleService) Update(id uuid.UUID, req *dto.UpdateScheduleRequest) (*models.Schedule, error) {
	var existing models.Schedule
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	updates := map[string]interface{}{}
	if req.HostID != nil {
		hostID, err := uuid.Parse(*req.HostID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hostId", ErrValidation)
		}
		updates["host_id"] = hostID
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Platform != nil {
		updates["platform"] = *req.Platform
	}
	if req.StoreName != nil {
		updates["store_name"] = *req.StoreName
	}
	if req.ScheduledAt != nil {
		scheduledAt, err := parseLocalTime(*req.ScheduledAt)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid scheduledAt", ErrValidation)
		}
		updates["scheduled_at"] = scheduledAt
	}
	if req.SalesTarget != nil {
		updates["sales_target"] = float64(*req.SalesTarget)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.Schedule{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		return createChildren(tx, id, req.Products, req.Vouchers, req.TalkingPoints)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	return s.GetByID(id)
}

// Delete removes the schedule and cascades to its children.
func (s *AdminScheduleService) Delete(id uuid.UUID) error {
	var existing models.Schedule
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return fmt.Errorf("failed to load schedule: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Schedule{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func deleteChildren(tx *gorm.DB, scheduleID uuid.UUID) error {
	if err := tx.Where("schedule_id = ?", scheduleID).Delete(&models.ScheduleProduct{}).Error; err != nil {
		return err
	}
	if err := tx.Where("schedule_id = ?", scheduleID).Delete(&models.ScheduleVoucher{}).Error; err != nil {
		return err
	}
	return tx.Where("schedule_id = ?", scheduleID).Delete(&models.TalkingPoint{}).Error
}

func createChildren(tx *gorm.DB, scheduleID uuid.UUID, products []dto.ScheduleProductInput, vouchers []dto.ScheduleVoucherInput, points []dto.TalkingPointInput) error {
	for _, p := range products {
		sp := models.ScheduleProduct{
			ID:         uuid.New(),
			ScheduleID: scheduleID,
			ProductID:  p.ProductID,
			PromoPrice: float64(p.PromoPrice),
		}
		if err := tx.Create(&sp).Error; err != nil {
			return err
		}
	}
	for _, v := range vouchers {
		sv := models.ScheduleVoucher{
			ID:         uuid.New(),
			ScheduleID: scheduleID,
			VoucherID:  v.VoucherID,
		}
		if err := tx.Create(&sv).Error; err != nil {
			return err
		}
	}
	for _, tp := range points {
		point := models.TalkingPoint{
			ID:         uuid.New(),
			ScheduleID: scheduleID,
			Text:       tp.Text,
			Order:      tp.Order,
		}
		if err := tx.Create(&point).Error; err != nil {
			return err
		}
	}
	return nil
}

// parseLocalTime reads a timestamp with naive local-time semantics: the
// wall-clock digits are taken as-is in the server zone, with no UTC shift.
// A trailing Z is ignored rather than treated as an offset.
func parseLocalTime(value string) (time.Time, error) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "Z")
	layouts := []string{
		"2006-01-02T15:04:05.999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// localDayRange turns a YYYY-MM-DD string into the inclusive local-day
// range [00:00:00.000, 23:59:59.999]. The components are used directly so
// the result is independent of how the runtime would parse the string as
// an instant.
func localDayRange(date string) (time.Time, time.Time, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.Month(month), day, 23, 59, 59, 999_000_000, time.Local)
	return start, end, nil
}
