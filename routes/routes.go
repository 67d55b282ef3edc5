package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/middleware"
)

// SetupRoutes is the single entry-point that wires up the public auth
// routes and the JWT-protected API groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Everything else requires a valid bearer token
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)

	SetupUserRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupStockRoutes(api, db)
	SetupReportRoutes(api, db)
}
