package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryBeef    ProductCategory = "beef"
	CategoryPork    ProductCategory = "pork"
	CategoryChicken ProductCategory = "chicken"
	CategoryGoat    ProductCategory = "goat"
	CategoryOther   ProductCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryBeef, CategoryPork, CategoryChicken, CategoryGoat, CategoryOther:
		return true
	}
	return false
}

// Product is a cut of meat sold by the kilogram. StockQuantity is the
// on-hand weight in kg and never goes negative.
type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Category      ProductCategory `gorm:"type:VARCHAR(20);not null;default:'other'" json:"category"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"stock_quantity"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
