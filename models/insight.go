package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesInsight is a free-standing analytics snapshot of the best-selling
// product, produced by an explicit recalculation.
type SalesInsight struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	BestSellingProductID uint            `gorm:"not null" json:"best_selling_product_id"`
	BestSellingProduct   Product         `gorm:"foreignKey:BestSellingProductID;constraint:OnDelete:CASCADE" json:"best_selling_product,omitempty"`
	TotalQuantitySold    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_quantity_sold"`
	CalculatedAt         time.Time       `json:"calculated_at"`
}
