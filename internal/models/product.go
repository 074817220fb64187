package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SKU          string    `gorm:"size:50;not null;uniqueIndex" json:"sku"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	DefaultPrice float64   `gorm:"not null;default:0" json:"defaultPrice"`
	Stock        int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
