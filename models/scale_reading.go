package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScaleReading captures a single weighing event on the shop scale.
// TotalPrice is derived (weight x price per kg) when not supplied
// explicitly; readings are never updated after creation.
type ScaleReading struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ProductID  uint            `gorm:"not null" json:"product_id"`
	Product    Product         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	WeightKg   decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"weight_kg"`
	PricePerKg decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_kg"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	RecordedAt time.Time       `json:"recorded_at"`
}
