package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Martokim/TamuCuts-api/controllers/user"
	"github.com/Martokim/TamuCuts-api/middleware"
	"github.com/Martokim/TamuCuts-api/models"
)

// SetupUserRoutes registers all "/api/users/*" endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	{
		users.GET("/me", userControllers.GetUser(db))
		users.PUT("/me", userControllers.UpdateUser(db))

		admin := users.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("", userControllers.GetAllUsers(db))
			admin.GET("/:id", userControllers.GetUserByID(db))
			admin.PUT("/:id/role", userControllers.UpdateUserRole(db))
			admin.DELETE("/:id", userControllers.DeleteUser(db))
		}
	}
}
