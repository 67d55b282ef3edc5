package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/models"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type PlaceOrderRequest struct {
	CustomerID  uint             `json:"customer_id" binding:"required"`
	Status      string           `json:"status"`
	PaymentType string           `json:"payment_type"`
	Items       []OrderItemInput `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse carries the derived total alongside the stored fields.
type OrderResponse struct {
	models.Order
	TotalPrice decimal.Decimal `json:"total_price"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToUpper(status)) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusProcessing:
		return models.OrderStatusProcessing, nil
	case models.OrderStatusCompleted:
		return models.OrderStatusCompleted, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Map string to PaymentType
func mapPaymentType(payment string) (models.PaymentType, error) {
	switch models.PaymentType(strings.ToUpper(payment)) {
	case models.PaymentTypeCash:
		return models.PaymentTypeCash, nil
	case models.PaymentTypeMobile:
		return models.PaymentTypeMobile, nil
	default:
		return "", errors.New("invalid payment type")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func toOrderResponse(order models.Order) OrderResponse {
	return OrderResponse{Order: order, TotalPrice: order.TotalPrice()}
}

func toOrderResponses(orders []models.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses
}

// -------- Core Logic --------

// PlaceOrder creates a new order. Inline items go through the same
// stock-accounting flow as items added later, inside one transaction:
// a failed line rolls the whole order back.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (*models.Order, error) {
	var customer models.User
	if err := db.First(&customer, req.CustomerID).Error; err != nil {
		return nil, err
	}

	status := models.OrderStatusPending
	if req.Status != "" {
		mapped, err := mapOrderStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = mapped
	}

	paymentType := models.PaymentTypeCash
	if req.PaymentType != "" {
		mapped, err := mapPaymentType(req.PaymentType)
		if err != nil {
			return nil, err
		}
		paymentType = mapped
	}

	order := models.Order{
		CustomerID:  req.CustomerID,
		OrderRef:    generateOrderRef(),
		Status:      status,
		PaymentType: paymentType,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, input := range req.Items {
			if _, err := createOrderItemTx(tx, order.ID, input.ProductID, input.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Customer").Preload("Items").Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		return nil, err
	}

	logger.Info().
		Uint("order_id", order.ID).
		Str("order_ref", order.OrderRef).
		Int("items", len(order.Items)).
		Msg("order placed")

	broadcastNewOrder(order)
	return &order, nil
}

// -------- Handlers --------

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := PlaceOrder(db, req)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer or product not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(*order))
	}
}

// GET /api/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Customer").
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toOrderResponses(orders))
	}
}

// GET /api/orders/customer/:customerID
func GetCustomerOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.Param("customerID")
		if customerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customerID is required"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("customer_id = ?", customerID).
			Preload("Customer").
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toOrderResponses(orders))
	}
}

// GET /api/orders/:id
// Accepts a numeric id or an order_ref. Refs always contain a dash, so a
// non-numeric param can only be a ref; comparing it against the integer
// id column would be a type error on postgres.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := c.Param("id")
		query := db.
			Preload("Customer").
			Preload("Items").
			Preload("Items.Product")
		if _, err := strconv.ParseUint(param, 10, 64); err == nil {
			query = query.Where("id = ?", param)
		} else {
			query = query.Where("order_ref = ?", param)
		}
		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(order))
	}
}

// PUT /api/orders/:id/status
// Transitions are free-form: any valid status can replace any other.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var order models.Order
		if err := db.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DELETE /api/orders/:id
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
