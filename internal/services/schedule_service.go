package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streamline-live/streamline-backend/internal/dto"
	"github.com/streamline-live/streamline-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrNotScheduleOwner = errors.New("schedule belongs to another host")
)

// AlreadyAcknowledgedError carries the timestamp set by the first
// acknowledge so retries can report it unchanged.
type AlreadyAcknowledgedError struct {
	AcknowledgedAt time.Time
}

func (e *AlreadyAcknowledgedError) Error() string {
	return "schedule already acknowledged"
}

// ScheduleService serves the host-facing schedule views. Ownership checks
// run existence-first: a nonexistent id yields not-found, never forbidden.
type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// ListMySchedules returns the host's schedules from local start-of-today
// onwards, ascending. Past schedules are excluded.
func (s *ScheduleService) ListMySchedules(hostID uuid.UUID) ([]dto.ScheduleSummary, error) {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var schedules []models.Schedule
	err := s.db.
		Where("host_id = ? AND scheduled_at >= ?", hostID, startOfToday).
		Order("scheduled_at ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	summaries := make([]dto.ScheduleSummary, len(schedules))
	for i, sched := range schedules {
		summaries[i] = summarize(&sched)
	}
	return summaries, nil
}

// GetScheduleDetail returns the full briefing for one schedule: products
// joined with the catalog, vouchers, and talking points in order.
func (s *ScheduleService) GetScheduleDetail(hostID, scheduleID uuid.UUID) (*dto.Briefing, error) {
	var sched models.Schedule
	err := s.db.
		Preload("Products.Product").
		Preload("Vouchers.Voucher").
		Preload("TalkingPoints", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&sched, "id = ?", scheduleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	if sched.HostID != hostID {
		return nil, ErrNotScheduleOwner
	}

	briefing := dto.Briefing{
		ScheduleSummary: summarize(&sched),
		Products:        make([]dto.BriefingProduct, len(sched.Products)),
		Vouchers:        make([]dto.BriefingVoucher, len(sched.Vouchers)),
		TalkingPoints:   make([]dto.BriefingTalkingPoint, len(sched.TalkingPoints)),
	}
	for i, sp := range sched.Products {
		briefing.Products[i] = dto.BriefingProduct{
			ID:           sp.Product.ID,
			SKU:          sp.Product.SKU,
			Name:         sp.Product.Name,
			DefaultPrice: sp.Product.DefaultPrice,
			PromoPrice:   sp.PromoPrice,
		}
	}
	for i, sv := range sched.Vouchers {
		briefing.Vouchers[i] = dto.BriefingVoucher{
			ID:          sv.Voucher.ID,
			Code:        sv.Voucher.Code,
			Description: sv.Voucher.Description,
			IsActive:    sv.Voucher.IsActive,
		}
	}
	for i, tp := range sched.TalkingPoints {
		briefing.TalkingPoints[i] = dto.BriefingTalkingPoint{
			ID:    tp.ID,
			Text:  tp.Text,
			Order: tp.Order,
		}
	}
	return &briefing, nil
}

// Acknowledge marks the schedule as read by its host. The write is a
// conditional UPDATE on acknowledged_at IS NULL, so under concurrent
// acknowledges exactly one caller sets the timestamp and the rest observe
// AlreadyAcknowledgedError with the winner's value.
func (s *ScheduleService) Acknowledge(hostID, scheduleID uuid.UUID) (time.Time, error) {
	var sched models.Schedule
	if err := s.db.First(&sched, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, ErrScheduleNotFound
		}
		return time.Time{}, fmt.Errorf("failed to load schedule: %w", err)
	}

	if sched.HostID != hostID {
		return time.Time{}, ErrNotScheduleOwner
	}

	if sched.AcknowledgedAt != nil {
		return time.Time{}, &AlreadyAcknowledgedError{AcknowledgedAt: *sched.AcknowledgedAt}
	}

	now := time.Now()
	result := s.db.Model(&models.Schedule{}).
		Where("id = ? AND acknowledged_at IS NULL", scheduleID).
		Update("acknowledged_at", now)
	if result.Error != nil {
		return time.Time{}, fmt.Errorf("failed to acknowledge schedule: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Lost the race; report the timestamp the winner set.
		var current models.Schedule
		if err := s.db.First(&current, "id = ?", scheduleID).Error; err == nil && current.AcknowledgedAt != nil {
			return time.Time{}, &AlreadyAcknowledgedError{AcknowledgedAt: *current.AcknowledgedAt}
		}
		return time.Time{}, ErrScheduleNotFound
	}

	return now, nil
}

func summarize(sched *models.Schedule) dto.ScheduleSummary {
	return dto.ScheduleSummary{
		ID:             sched.ID,
		Title:          sched.Title,
		Platform:       sched.Platform,
		StoreName:      sched.StoreName,
		ScheduledAt:    sched.ScheduledAt,
		SalesTarget:    sched.SalesTarget,
		AcknowledgedAt: sched.AcknowledgedAt,
	}
}
