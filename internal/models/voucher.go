package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED_AMOUNT"
)

type Voucher struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code              string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Description       string    `gorm:"type:text" json:"description"`
	DiscountType      string    `gorm:"size:20;not null;default:'PERCENTAGE'" json:"discountType"`
	DiscountValue     float64   `gorm:"not null;default:0" json:"discountValue"`
	MinPurchaseAmount *float64  `json:"minPurchaseAmount"`
	MaxDiscountAmount *float64  `json:"maxDiscountAmount"`
	ValidFrom         time.Time `json:"validFrom"`
	ValidUntil        time.Time `json:"validUntil"`
	IsActive          bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
