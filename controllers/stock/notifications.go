package stockControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/models"
)

type CreateStockNotificationRequest struct {
	ProductID   uint            `json:"product_id" binding:"required"`
	ThresholdKg decimal.Decimal `json:"threshold_kg"`
}

// POST /api/notifications
func CreateStockNotification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateStockNotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.ThresholdKg.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Threshold must be positive"})
			return
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		notification := models.StockNotification{
			ProductID:   req.ProductID,
			ThresholdKg: req.ThresholdKg.Round(2),
			IsTriggered: product.StockQuantity.LessThan(req.ThresholdKg),
		}

		if err := db.Create(&notification).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
			return
		}

		c.JSON(http.StatusCreated, notification)
	}
}

// GET /api/notifications
func GetStockNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notifications []models.StockNotification
		if err := db.Preload("Product").Order("created_at DESC").Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// GET /api/notifications/:id
func GetStockNotificationByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notification models.StockNotification
		if err := db.Preload("Product").First(&notification, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusOK, notification)
	}
}

// POST /api/notifications/:id/check
// Pull-based recheck: the flag trips only when stock has fallen strictly
// below the threshold.
func CheckStockNotification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notification models.StockNotification
		if err := db.Preload("Product").First(&notification, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}

		notification.IsTriggered = notification.Product.StockQuantity.LessThan(notification.ThresholdKg)
		if err := db.Model(&notification).Update("is_triggered", notification.IsTriggered).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
			return
		}

		// TODO: send an SMS/email to the shop owner when the flag trips.
		c.JSON(http.StatusOK, notification)
	}
}

// DELETE /api/notifications/:id
func DeleteStockNotification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notification models.StockNotification
		if err := db.First(&notification, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		if err := db.Delete(&notification).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
	}
}
