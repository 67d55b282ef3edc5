package orderControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrQuantityNotPositive = errors.New("quantity must be positive")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

type CreateOrderItemRequest struct {
	OrderID   uint            `json:"order_id" binding:"required"`
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// today returns the current date truncated to midnight UTC, the grain the
// stock ledger is kept at.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// createOrderItemTx runs the stock-accounting flow for one item inside an
// existing transaction: the conditional decrement only succeeds when
// enough stock remains, so two competing sales of the last kilos cannot
// both go through.
func createOrderItemTx(tx *gorm.DB, orderID, productID uint, quantity decimal.Decimal) (*models.OrderItem, error) {
	// Round to the ledger grain first: a sub-gram request like 0.004 kg
	// must not slip through as a zero-quantity sale.
	quantity = quantity.Round(2)
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, ErrQuantityNotPositive
	}

	var product models.Product
	if err := tx.First(&product, productID).Error; err != nil {
		return nil, err
	}

	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInsufficientStock
	}

	ledger := models.StockTransaction{
		ProductID: productID,
		Type:      models.TransactionOut,
		Quantity:  quantity,
		Date:      today(),
		Remarks:   "Sale via order",
	}
	if err := tx.Create(&ledger).Error; err != nil {
		return nil, err
	}

	item := models.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := tx.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateOrderItem adds a product line to an order, deducting stock and
// appending the OUT ledger row in a single transaction.
func CreateOrderItem(db *gorm.DB, orderID, productID uint, quantity decimal.Decimal) (*models.OrderItem, error) {
	var item *models.OrderItem
	err := db.Transaction(func(tx *gorm.DB) error {
		created, err := createOrderItemTx(tx, orderID, productID, quantity)
		if err != nil {
			return err
		}
		item = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info().
		Uint("order_id", orderID).
		Uint("product_id", productID).
		Str("quantity", quantity.String()).
		Msg("order item created, stock deducted")
	return item, nil
}

// POST /api/order-items
func CreateOrderItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, req.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		item, err := CreateOrderItem(db, req.OrderID, req.ProductID, req.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, ErrQuantityNotPositive), errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, gorm.ErrDuplicatedKey):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product already on this order"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order item"})
			}
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// GET /api/order-items
func GetOrderItemsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Product")
		if orderID := c.Query("order_id"); orderID != "" {
			query = query.Where("order_id = ?", orderID)
		}
		var items []models.OrderItem
		if err := query.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /api/order-items/:id
func GetOrderItemByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.OrderItem
		if err := db.Preload("Product").First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/order-items/:id
// The ledger stays untouched: removing a line does not undo the sale.
func DeleteOrderItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.OrderItem
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
			return
		}
		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order item deleted successfully"})
	}
}
