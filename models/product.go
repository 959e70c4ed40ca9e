package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Title       string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"not null"`
	ImageURL    string  `gorm:"not null"`
	UserID      uint    `gorm:"not null;index"`
}
