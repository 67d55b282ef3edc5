package scaleControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/models"
)

type CreateScaleReadingRequest struct {
	ProductID  uint             `json:"product_id" binding:"required"`
	WeightKg   decimal.Decimal  `json:"weight_kg"`
	PricePerKg *decimal.Decimal `json:"price_per_kg"`
	TotalPrice *decimal.Decimal `json:"total_price"`
}

// CreateScaleReading records one weighing event. PricePerKg defaults to
// the product's current price; TotalPrice is derived from weight and
// price only when the scale did not supply it.
func CreateScaleReading(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateScaleReadingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.WeightKg.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Weight must be positive"})
			return
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		pricePerKg := product.Price
		if req.PricePerKg != nil {
			if req.PricePerKg.LessThanOrEqual(decimal.Zero) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price per kg must be positive"})
				return
			}
			pricePerKg = req.PricePerKg.Round(2)
		}

		totalPrice := req.WeightKg.Mul(pricePerKg).Round(2)
		if req.TotalPrice != nil {
			totalPrice = req.TotalPrice.Round(2)
		}

		reading := models.ScaleReading{
			ProductID:  req.ProductID,
			WeightKg:   req.WeightKg.Round(3),
			PricePerKg: pricePerKg,
			TotalPrice: totalPrice,
			RecordedAt: time.Now(),
		}

		if err := db.Create(&reading).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create scale reading"})
			return
		}

		c.JSON(http.StatusCreated, reading)
	}
}

// GET /api/scale-readings
func GetScaleReadings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Product").Order("recorded_at DESC")
		if productID := c.Query("product_id"); productID != "" {
			query = query.Where("product_id = ?", productID)
		}
		var readings []models.ScaleReading
		if err := query.Find(&readings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scale readings"})
			return
		}
		c.JSON(http.StatusOK, readings)
	}
}

// GET /api/scale-readings/:id
func GetScaleReadingByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reading models.ScaleReading
		if err := db.Preload("Product").First(&reading, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Scale reading not found"})
			return
		}
		c.JSON(http.StatusOK, reading)
	}
}

// DELETE /api/scale-readings/:id
func DeleteScaleReading(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reading models.ScaleReading
		if err := db.First(&reading, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Scale reading not found"})
			return
		}
		if err := db.Delete(&reading).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete scale reading"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Scale reading deleted successfully"})
	}
}
