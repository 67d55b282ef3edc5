package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentType string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"

	PaymentTypeCash   PaymentType = "CASH"
	PaymentTypeMobile PaymentType = "MOBILE"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	CustomerID  uint        `gorm:"not null" json:"customer_id"`
	Customer    User        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	OrderRef    string      `gorm:"uniqueIndex" json:"order_ref"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	PaymentType PaymentType `gorm:"type:VARCHAR(10);default:'CASH'" json:"payment_type"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TotalPrice is the derived order total: sum of quantity x product price
// over the items. Items and their products must be preloaded.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Quantity.Mul(item.Product.Price))
	}
	return total.Round(2)
}

// OrderItem is one product line on an order. Quantity is in kg and is
// immutable once the item has been created.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;uniqueIndex:idx_order_product" json:"order_id"`
	ProductID uint            `gorm:"not null;uniqueIndex:idx_order_product" json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}
