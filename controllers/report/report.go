package reportControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/models"
)

// sumTransactions totals ledger quantities of one type, optionally
// restricted to a single date. Empty sets sum to zero, not an error.
func sumTransactions(db *gorm.DB, txnType models.TransactionType, date string) (decimal.Decimal, error) {
	query := db.Model(&models.StockTransaction{}).Where("type = ?", txnType)
	if date != "" {
		query = query.Where("DATE(date) = ?", date)
	}
	var total decimal.Decimal
	row := query.Select("COALESCE(SUM(quantity), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// sumRevenue totals quantity x product price over order items whose
// orders were created on the given date (or over all orders).
func sumRevenue(db *gorm.DB, date string) (decimal.Decimal, error) {
	query := db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id")
	if date != "" {
		query = query.Where("DATE(orders.created_at) = ?", date)
	}
	var total decimal.Decimal
	row := query.Select("COALESCE(SUM(order_items.quantity * products.price), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// DailyReport aggregates the stock ledger and order revenue for one day.
// GET /api/reports/:date with date as YYYY-MM-DD; GET /api/reports/ covers
// all time.
func DailyReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dateParam := c.Param("date")
		date := ""
		label := "all"
		if dateParam != "" {
			parsed, err := time.Parse("2006-01-02", dateParam)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
				return
			}
			date = parsed.Format("2006-01-02")
			label = date
		}

		openingStock, err := sumTransactions(db, models.TransactionIn, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
			return
		}
		sales, err := sumTransactions(db, models.TransactionOut, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
			return
		}
		closingStock, err := sumTransactions(db, models.TransactionClose, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
			return
		}
		revenue, err := sumRevenue(db, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"date":          label,
			"opening_stock": openingStock.InexactFloat64(),
			"sales":         sales.InexactFloat64(),
			"closing_stock": closingStock.InexactFloat64(),
			"revenue":       revenue.InexactFloat64(),
		})
	}
}
