package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/streamline-live/streamline-backend/internal/models"
)

func TestListMySchedulesExcludesPastAndOtherHosts(t *testing.T) {
	db := openTestDB(t)
	svc := NewScheduleService(db)

	host := createUser(t, db, "siti", "password123", models.RoleHost)
	other := createUser(t, db, "rina", "password123", models.RoleHost)

	now := time.Now()
	createSchedule(t, db, host.ID, "yesterday", now.AddDate(0, 0, -1))
	later := createSchedule(t, db, host.ID, "tomorrow", now.AddDate(0, 0, 1))
	soon := createSchedule(t, db, host.ID, "later today", now.Add(2*time.Hour))
	createSchedule(t, db, other.ID, "someone else", now.Add(3*time.Hour))

	got, err := svc.ListMySchedules(host.ID)
	if err != nil {
		t.Fatalf("ListMySchedules failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d schedules, want 2", len(got))
	}
	// Ascending by time: today's session first, tomorrow's second.
	if got[0].ID != soon.ID || got[1].ID != later.ID {
		t.Errorf("order = [%s %s], want [%s %s]", got[0].Title, got[1].Title, soon.Title, later.Title)
	}
}

func TestGetScheduleDetailChecksExistenceBeforeOwnership(t *testing.T) {
	db := openTestDB(t)
	svc := NewScheduleService(db)

	owner := createUser(t, db, "siti", "password123", models.RoleHost)
	intruder := createUser(t, db, "rina", "password123", models.RoleHost)
	sched := createSchedule(t, db, owner.ID, "briefing", time.Now().Add(time.Hour))

	t.Run("nonexistent id yields not found even for non-owner", func(t *testing.T) {
		_, err := svc.GetScheduleDetail(intruder.ID, uuid.New())
		if !errors.Is(err, ErrScheduleNotFound) {
			t.Errorf("err = %v, want ErrScheduleNotFound", err)
		}
	})

	t.Run("existing schedule of another host yields forbidden", func(t *testing.T) {
		_, err := svc.GetScheduleDetail(intruder.ID, sched.ID)
		if !errors.Is(err, ErrNotScheduleOwner) {
			t.Errorf("err = %v, want ErrNotScheduleOwner", err)
		}
	})
}

func TestGetScheduleDetailReturnsOrderedBriefing(t *testing.T) {
	db := openTestDB(t)
	svc := NewScheduleService(db)

	host := createUser(t, db, "siti", "password123", models.RoleHost)
	sched := createSchedule(t, db, host.ID, "briefing", time.Now().Add(time.Hour))
	serum := createProduct(t, db, "GROGLO-SERUM-001", "Groglo Whitening Serum 30ml", 199000)
	voucher := createVoucher(t, db, "GGMG1111", true)

	if err := db.Create(&models.ScheduleProduct{
		ID: uuid.New(), ScheduleID: sched.ID, ProductID: serum.ID, PromoPrice: 99000,
	}).Error; err != nil {
		t.Fatalf("failed to link product: %v", err)
	}
	if err := db.Create(&models.ScheduleVoucher{
		ID: uuid.New(), ScheduleID: sched.ID, VoucherID: voucher.ID,
	}).Error; err != nil {
		t.Fatalf("failed to link voucher: %v", err)
	}
	// Insert talking points out of order; the briefing must sort them.
	for _, order := range []int{3, 1, 2} {
		if err := db.Create(&models.TalkingPoint{
			ID: uuid.New(), ScheduleID: sched.ID, Text: "point", Order: order,
		}).Error; err != nil {
			t.Fatalf("failed to create talking point: %v", err)
		}
	}

	briefing, err := svc.GetScheduleDetail(host.ID, sched.ID)
	if err != nil {
		t.Fatalf("GetScheduleDetail failed: %v", err)
	}

	if len(briefing.Products) != 1 {
		t.Fatalf("got %d products, want 1", len(briefing.Products))
	}
	p := briefing.Products[0]
	if p.SKU != "GROGLO-SERUM-001" || p.DefaultPrice != 199000 || p.PromoPrice != 99000 {
		t.Errorf("product = %+v, want catalog price joined with promo price", p)
	}

	if len(briefing.Vouchers) != 1 || briefing.Vouchers[0].Code != "GGMG1111" {
		t.Errorf("vouchers = %+v, want GGMG1111", briefing.Vouchers)
	}

	if len(briefing.TalkingPoints) != 3 {
		t.Fatalf("got %d talking points, want 3", len(briefing.TalkingPoints))
	}
	for i, tp := range briefing.TalkingPoints {
		if tp.Order != i+1 {
			t.Errorf("talking point %d has order %d, want %d", i, tp.Order, i+1)
		}
	}
}

func TestAcknowledgeIsIdempotentByRejection(t *testing.T) {
	db := openTestDB(t)
	svc := NewScheduleService(db)

	host := createUser(t, db, "siti", "password123", models.RoleHost)
	sched := createSchedule(t, db, host.ID, "briefing", time.Now().Add(time.Hour))

	first, err := svc.Acknowledge(host.ID, sched.ID)
	if err != nil {
		t.Fatalf("first acknowledge failed: %v", err)
	}
	if first.IsZero() {
		t.Fatal("first acknowledge returned zero timestamp")
	}

	// Every retry is rejected and reports the original timestamp.
	for i := 0; i < 2; i++ {
		_, err := svc.Acknowledge(host.ID, sched.ID)
		var already *AlreadyAcknowledgedError
		if !errors.As(err, &already) {
			t.Fatalf("retry %d: err = %v, want AlreadyAcknowledgedError", i, err)
		}
		// Tolerate driver-level truncation of sub-millisecond precision.
		if d := already.AcknowledgedAt.Sub(first); d < -time.Millisecond || d > time.Millisecond {
			t.Errorf("retry %d: timestamp = %v, want original %v", i, already.AcknowledgedAt, first)
		}
	}
}

func TestAcknowledgeOwnershipAndExistence(t *testing.T) {
	db := openTestDB(t)
	svc := NewScheduleService(db)

	owner := createUser(t, db, "siti", "password123", models.RoleHost)
	intruder := createUser(t, db, "rina", "password123", models.RoleHost)
	sched := createSchedule(t, db, owner.ID, "briefing", time.Now().Add(time.Hour))

	if _, err := svc.Acknowledge(intruder.ID, sched.ID); !errors.Is(err, ErrNotScheduleOwner) {
		t.Errorf("err = %v, want ErrNotScheduleOwner", err)
	}
	if _, err := svc.Acknowledge(owner.ID, uuid.New()); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("err = %v, want ErrScheduleNotFound", err)
	}
}
