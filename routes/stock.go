package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	scaleControllers "github.com/Martokim/TamuCuts-api/controllers/scale"
	stockControllers "github.com/Martokim/TamuCuts-api/controllers/stock"
	"github.com/Martokim/TamuCuts-api/middleware"
	"github.com/Martokim/TamuCuts-api/models"
)

// SetupStockRoutes registers scale-reading, stock-transaction and
// low-stock notification endpoints. Ledger and notification mutation is
// admin-only; scale readings come from the shop floor.
func SetupStockRoutes(api *gin.RouterGroup, db *gorm.DB) {
	readings := api.Group("/scale-readings")
	{
		readings.POST("", scaleControllers.CreateScaleReading(db))
		readings.GET("", scaleControllers.GetScaleReadings(db))
		readings.GET("/:id", scaleControllers.GetScaleReadingByID(db))
		readings.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), scaleControllers.DeleteScaleReading(db))
	}

	transactions := api.Group("/stock-transactions")
	{
		transactions.GET("", stockControllers.GetStockTransactions(db))
		transactions.GET("/:id", stockControllers.GetStockTransactionByID(db))

		admin := transactions.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("", stockControllers.CreateStockTransaction(db))
			admin.DELETE("/:id", stockControllers.DeleteStockTransaction(db))
		}
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", stockControllers.GetStockNotifications(db))
		notifications.GET("/:id", stockControllers.GetStockNotificationByID(db))
		notifications.POST("/:id/check", stockControllers.CheckStockNotification(db))

		admin := notifications.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("", stockControllers.CreateStockNotification(db))
			admin.DELETE("/:id", stockControllers.DeleteStockNotification(db))
		}
	}
}
