package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/models"
)

type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Description   string          `json:"description"`
}

// CreateProduct creates a new product. Prices and stock are kept at two
// decimal places; stock may not start negative.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		category := models.CategoryOther
		if req.Category != "" {
			category = models.ProductCategory(strings.ToLower(req.Category))
			if !category.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
		}

		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
			return
		}
		if req.StockQuantity.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock quantity cannot be negative"})
			return
		}

		product := models.Product{
			Name:          req.Name,
			Category:      category,
			Price:         req.Price.Round(2),
			StockQuantity: req.StockQuantity.Round(2),
			Description:   req.Description,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
