package models

import (
	"time"

	"github.com/google/uuid"
)

// Livestream platforms a schedule can target.
const (
	PlatformShopee    = "SHOPEE_LIVE"
	PlatformTikTok    = "TIKTOK_LIVE"
	PlatformTokopedia = "TOKOPEDIA_PLAY"
	PlatformLazada    = "LAZADA_LIVE"
)

// Schedule is a planned livestream session assigned to a host. ScheduledAt
// carries local-time semantics: it is stored exactly as submitted, with no
// timezone conversion. AcknowledgedAt transitions from nil to a timestamp
// exactly once; there is no un-acknowledge.
type Schedule struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	HostID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"hostId"`
	Host           User       `gorm:"foreignKey:HostID" json:"host,omitempty"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Platform       string     `gorm:"size:20;not null;index" json:"platform"`
	StoreName      string     `gorm:"size:100;not null" json:"storeName"`
	ScheduledAt    time.Time  `gorm:"not null;index" json:"scheduledAt"`
	SalesTarget    float64    `gorm:"not null;default:0" json:"salesTarget"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	Products      []ScheduleProduct `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Vouchers      []ScheduleVoucher `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"vouchers,omitempty"`
	TalkingPoints []TalkingPoint    `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"talkingPoints,omitempty"`
}

// ScheduleProduct links a schedule to a catalog product with the promo
// price quoted for that session.
type ScheduleProduct struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;index" json:"scheduleId"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	PromoPrice float64   `gorm:"not null;default:0" json:"promoPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ScheduleVoucher struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;index" json:"scheduleId"`
	VoucherID  uuid.UUID `gorm:"type:uuid;not null;index" json:"voucherId"`
	Voucher    Voucher   `gorm:"foreignKey:VoucherID" json:"voucher,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TalkingPoint is one briefing item for a schedule. Order is 1-based among
// points of the same schedule; producers emit 1..N without gaps but storage
// does not enforce uniqueness.
type TalkingPoint struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;index" json:"scheduleId"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Order      int       `gorm:"column:sort_order;not null" json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
}
