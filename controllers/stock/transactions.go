package stockControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/models"
)

var errInsufficientStock = errors.New("insufficient stock")

type CreateStockTransactionRequest struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	Date      string          `json:"date"` // YYYY-MM-DD, defaults to today
	Remarks   string          `json:"remarks"`
}

// CreateStockTransaction appends a row to the stock ledger and applies it
// to the product: IN adds to stock, OUT deducts (refusing to go below
// zero), CLOSE only records the end-of-day count.
func CreateStockTransaction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateStockTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		txnType := models.TransactionType(strings.ToUpper(req.Type))
		if !txnType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type"})
			return
		}

		// Round to the ledger grain before validating, so 0.004 kg cannot
		// round down to a zero-quantity row.
		quantity := req.Quantity.Round(2)
		if quantity.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}

		date := time.Now().UTC().Truncate(24 * time.Hour)
		if req.Date != "" {
			parsed, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
				return
			}
			date = parsed
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		ledger := models.StockTransaction{
			ProductID: req.ProductID,
			Type:      txnType,
			Quantity:  quantity,
			Date:      date,
			Remarks:   req.Remarks,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			switch txnType {
			case models.TransactionIn:
				if err := tx.Model(&models.Product{}).
					Where("id = ?", req.ProductID).
					Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity)).Error; err != nil {
					return err
				}
			case models.TransactionOut:
				res := tx.Model(&models.Product{}).
					Where("id = ? AND stock_quantity >= ?", req.ProductID, quantity).
					Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return errInsufficientStock
				}
			case models.TransactionClose:
				// Closing count only; stock stays as is.
			}
			return tx.Create(&ledger).Error
		})
		if err != nil {
			if errors.Is(err, errInsufficientStock) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient stock"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stock transaction"})
			return
		}

		c.JSON(http.StatusCreated, ledger)
	}
}

// GET /api/stock-transactions
func GetStockTransactions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Product").Order("date DESC, id DESC")
		if productID := c.Query("product_id"); productID != "" {
			query = query.Where("product_id = ?", productID)
		}
		if txnType := c.Query("type"); txnType != "" {
			query = query.Where("type = ?", strings.ToUpper(txnType))
		}
		if date := c.Query("date"); date != "" {
			if _, err := time.Parse("2006-01-02", date); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
				return
			}
			query = query.Where("DATE(date) = ?", date)
		}
		var transactions []models.StockTransaction
		if err := query.Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stock transactions"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

// GET /api/stock-transactions/:id
func GetStockTransactionByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.StockTransaction
		if err := db.Preload("Product").First(&transaction, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock transaction not found"})
			return
		}
		c.JSON(http.StatusOK, transaction)
	}
}

// DELETE /api/stock-transactions/:id
// Deleting a ledger row does not replay its stock effect.
func DeleteStockTransaction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.StockTransaction
		if err := db.First(&transaction, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock transaction not found"})
			return
		}
		if err := db.Delete(&transaction).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stock transaction"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Stock transaction deleted successfully"})
	}
}
