package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIn    TransactionType = "IN"
	TransactionOut   TransactionType = "OUT"
	TransactionClose TransactionType = "CLOSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIn, TransactionOut, TransactionClose:
		return true
	}
	return false
}

// StockTransaction is one row in the append-only stock ledger. OUT rows
// are written automatically when order items are created; IN and CLOSE
// rows come from deliveries and end-of-day counts.
type StockTransaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Type      TransactionType `gorm:"type:VARCHAR(10);not null" json:"type"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Date      time.Time       `gorm:"type:date;not null" json:"date"`
	Remarks   string          `json:"remarks"`
}

// StockNotification is a per-product low-stock trigger level.
// IsTriggered is derived and only recomputed on an explicit check.
type StockNotification struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ProductID   uint            `gorm:"not null" json:"product_id"`
	Product     Product         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	ThresholdKg decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"threshold_kg"`
	IsTriggered bool            `gorm:"default:false" json:"is_triggered"`
	CreatedAt   time.Time       `json:"created_at"`
}
