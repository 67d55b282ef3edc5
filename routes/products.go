package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Martokim/TamuCuts-api/controllers/product"
	"github.com/Martokim/TamuCuts-api/middleware"
	"github.com/Martokim/TamuCuts-api/models"
)

// SetupProductRoutes registers all "/api/products/*" endpoints.
// Reads are open to any authenticated user; mutation is admin-only.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		admin := products.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("", productcontroller.CreateProduct(db))
			admin.PUT("/:id", productcontroller.UpdateProduct(db))
			admin.DELETE("/:id", productcontroller.DeleteProduct(db))
			admin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			admin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
	}
}
