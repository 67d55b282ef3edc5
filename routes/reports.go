package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reportControllers "github.com/Martokim/TamuCuts-api/controllers/report"
	"github.com/Martokim/TamuCuts-api/middleware"
	"github.com/Martokim/TamuCuts-api/models"
)

// SetupReportRoutes registers the daily report and sales-insight
// endpoints.
func SetupReportRoutes(api *gin.RouterGroup, db *gorm.DB) {
	// No date means "all time"
	api.GET("/reports/", reportControllers.DailyReport(db))
	api.GET("/reports/:date", reportControllers.DailyReport(db))

	insights := api.Group("/insights")
	{
		insights.GET("", reportControllers.GetSalesInsights(db))
		insights.POST("/recalculate",
			middleware.RequireRole(models.RoleAdmin),
			reportControllers.RecalculateSalesInsight(db))
	}
}
