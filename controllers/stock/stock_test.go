package stockControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Martokim/TamuCuts-api/models"
)

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.StockTransaction{},
		&models.StockNotification{},
	))

	r := gin.New()
	r.POST("/api/stock-transactions", CreateStockTransaction(db))
	r.POST("/api/notifications", CreateStockNotification(db))
	r.POST("/api/notifications/:id/check", CheckStockNotification(db))
	return db, r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, stock string) models.Product {
	t.Helper()
	product := models.Product{
		Name:          "Chicken Whole",
		Category:      models.CategoryChicken,
		Price:         decimal.RequireFromString("450.00"),
		StockQuantity: decimal.RequireFromString(stock),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func stockOf(t *testing.T, db *gorm.DB, id uint) decimal.Decimal {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, id).Error)
	return product.StockQuantity
}

func TestStockTransactionInAddsStock(t *testing.T) {
	db, r := setupTest(t)
	product := seedProduct(t, db, "5.00")

	w := postJSON(t, r, "/api/stock-transactions", gin.H{
		"product_id": product.ID, "type": "IN", "quantity": "7.5", "remarks": "Morning delivery",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, stockOf(t, db, product.ID).Equal(decimal.RequireFromString("12.50")))
}

func TestStockTransactionOutDeductsStock(t *testing.T) {
	db, r := setupTest(t)
	product := seedProduct(t, db, "5.00")

	w := postJSON(t, r, "/api/stock-transactions", gin.H{
		"product_id": product.ID, "type": "OUT", "quantity": "2",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, stockOf(t, db, product.ID).Equal(decimal.RequireFromString("3.00")))
}

func TestStockTransactionOutInsufficientStock(t *testing.T) {
	db, r := setupTest(t)
	product := seedProduct(t, db, "5.00")

	w := postJSON(t, r, "/api/stock-transactions", gin.H{
		"product_id": product.ID, "type": "OUT", "quantity": "6",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, stockOf(t, db, product.ID).Equal(decimal.RequireFromString("5.00")))

	var count int64
	require.NoError(t, db.Model(&models.StockTransaction{}).Count(&count).Error)
	assert.Zero(t, count, "refused transactions must not reach the ledger")
}

func TestStockTransactionCloseLeavesStockAlone(t *testing.T) {
	db, r := setupTest(t)
	product := seedProduct(t, db, "5.00")

	w := postJSON(t, r, "/api/stock-transactions", gin.H{
		"product_id": product.ID, "type": "CLOSE", "quantity": "5", "remarks": "End of day count",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, stockOf(t, db, product.ID).Equal(decimal.RequireFromString("5.00")))
}

func TestStockTransactionValidation(t *testing.T) {
	db, r := setupTest(t)
	product := seedProduct(t, db, "5.00")

	w := postJSON(t, r, "/api/stock-transactions", gin.H{
		"product_id": product.ID, "type": "SIDEWAYS", "quantity": "1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/stock-transactions", gin.H{
		"product_id": product.ID, "type": "IN", "quantity": "0",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Rounds to 0.00 at the ledger grain.
	w = postJSON(t, r, "/api/stock-transactions", gin.H{
		"product_id": product.ID, "type": "OUT", "quantity": "0.004",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/stock-transactions", gin.H{
		"product_id": product.ID, "type": "IN", "quantity": "1", "date": "31-12-2025",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date format")
}

func TestNotificationCheckTriggersBelowThreshold(t *testing.T) {
	db, r := setupTest(t)

	cases := []struct {
		stock     string
		threshold string
		triggered bool
	}{
		{"3.00", "5.00", true},
		{"5.00", "5.00", false}, // boundary: equal is not low
		{"8.00", "5.00", false},
	}

	for i, tc := range cases {
		product := models.Product{
			Name:          fmt.Sprintf("Goat Leg %d", i),
			Category:      models.CategoryGoat,
			Price:         decimal.RequireFromString("600.00"),
			StockQuantity: decimal.RequireFromString(tc.stock),
		}
		require.NoError(t, db.Create(&product).Error)
		notification := models.StockNotification{
			ProductID:   product.ID,
			ThresholdKg: decimal.RequireFromString(tc.threshold),
		}
		require.NoError(t, db.Create(&notification).Error)

		w := postJSON(t, r, fmt.Sprintf("/api/notifications/%d/check", notification.ID), gin.H{})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated models.StockNotification
		require.NoError(t, db.First(&updated, notification.ID).Error)
		assert.Equal(t, tc.triggered, updated.IsTriggered,
			"stock %s vs threshold %s", tc.stock, tc.threshold)
	}
}

func TestNotificationCheckReflectsStockChanges(t *testing.T) {
	db, r := setupTest(t)
	product := seedProduct(t, db, "10.00")

	notification := models.StockNotification{
		ProductID:   product.ID,
		ThresholdKg: decimal.RequireFromString("5.00"),
	}
	require.NoError(t, db.Create(&notification).Error)

	w := postJSON(t, r, fmt.Sprintf("/api/notifications/%d/check", notification.ID), gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.StockNotification
	require.NoError(t, db.First(&updated, notification.ID).Error)
	assert.False(t, updated.IsTriggered)

	// Drain stock below the threshold, then re-check.
	w = postJSON(t, r, "/api/stock-transactions", gin.H{
		"product_id": product.ID, "type": "OUT", "quantity": "6",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, fmt.Sprintf("/api/notifications/%d/check", notification.ID), gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&updated, notification.ID).Error)
	assert.True(t, updated.IsTriggered)
}
