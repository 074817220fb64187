package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleHost  = "HOST"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username    string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password    string    `gorm:"not null" json:"-"`
	DisplayName string    `gorm:"size:100;not null" json:"displayName"`
	Role        string    `gorm:"size:10;not null;default:'HOST'" json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
