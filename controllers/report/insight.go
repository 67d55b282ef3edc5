package reportControllers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/models"
)

// RecalculateSalesInsight snapshots the current best seller: the product
// with the highest summed order-item quantity. Meant to be hit by an
// external scheduler or an admin after close of business.
func RecalculateSalesInsight(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			productID uint
			total     decimal.Decimal
		)
		row := db.Model(&models.OrderItem{}).
			Select("product_id, SUM(quantity) AS total_sold").
			Group("product_id").
			Order("total_sold DESC").
			Limit(1).
			Row()
		if err := row.Scan(&productID, &total); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No order items to analyze"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate insight"})
			return
		}

		insight := models.SalesInsight{
			BestSellingProductID: productID,
			TotalQuantitySold:    total,
			CalculatedAt:         time.Now(),
		}
		if err := db.Create(&insight).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save insight"})
			return
		}
		if err := db.Preload("BestSellingProduct").First(&insight, insight.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load insight"})
			return
		}

		c.JSON(http.StatusCreated, insight)
	}
}

// GET /api/insights
func GetSalesInsights(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var insights []models.SalesInsight
		if err := db.Preload("BestSellingProduct").Order("calculated_at DESC").Find(&insights).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch insights"})
			return
		}
		c.JSON(http.StatusOK, insights)
	}
}
