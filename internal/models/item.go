package models

import (
	"time"
)

type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Stock       int       `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	CategoryID  uint      `json:"category_id" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category   Category    `json:"-" gorm:"foreignKey:CategoryID"`
	OrderItems []OrderItem `json:"-" gorm:"foreignKey:ItemID"`
}
