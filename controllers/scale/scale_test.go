package scaleControllers

import (
	"bytes"
	"encoding/json"
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

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ScaleReading{}))

	r := gin.New()
	r.POST("/api/scale-readings", CreateScaleReading(db))
	r.GET("/api/scale-readings/:id", GetScaleReadingByID(db))
	return db, r
}

func postReading(t *testing.T, r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/scale-readings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	product := models.Product{
		Name:          "Pork Belly",
		Category:      models.CategoryPork,
		Price:         decimal.RequireFromString("650.00"),
		StockQuantity: decimal.RequireFromString("30.00"),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestCreateScaleReadingDerivesTotalPrice(t *testing.T) {
	db, r := setupTest(t)
	product := seedProduct(t, db)

	w := postReading(t, r, gin.H{"product_id": product.ID, "weight_kg": "1.5"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reading models.ScaleReading
	require.NoError(t, db.First(&reading).Error)
	// Price defaults to the product price, total = 1.5 x 650.00
	assert.True(t, reading.PricePerKg.Equal(decimal.RequireFromString("650.00")))
	assert.True(t, reading.TotalPrice.Equal(decimal.RequireFromString("975.00")),
		"total should be 975.00, got %s", reading.TotalPrice)
}

func TestCreateScaleReadingPreservesExplicitTotal(t *testing.T) {
	db, r := setupTest(t)
	product := seedProduct(t, db)

	w := postReading(t, r, gin.H{
		"product_id":   product.ID,
		"weight_kg":    "2.0",
		"price_per_kg": "600.00",
		"total_price":  "999.99",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reading models.ScaleReading
	require.NoError(t, db.First(&reading).Error)
	assert.True(t, reading.TotalPrice.Equal(decimal.RequireFromString("999.99")),
		"an explicitly supplied total must be kept as-is")
	assert.True(t, reading.PricePerKg.Equal(decimal.RequireFromString("600.00")))
}

func TestCreateScaleReadingRejectsNonPositiveWeight(t *testing.T) {
	db, r := setupTest(t)
	product := seedProduct(t, db)

	for _, weight := range []string{"0", "-2.5"} {
		w := postReading(t, r, gin.H{"product_id": product.ID, "weight_kg": weight})
		assert.Equal(t, http.StatusBadRequest, w.Code, "weight %s", weight)
	}

	var count int64
	require.NoError(t, db.Model(&models.ScaleReading{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateScaleReadingUnknownProduct(t *testing.T) {
	_, r := setupTest(t)
	w := postReading(t, r, gin.H{"product_id": 999, "weight_kg": "1.0"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
