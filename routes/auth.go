package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/auth"
)

// SetupAuthRoutes registers registration and token endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/api/auth/register", auth.RegisterHandler(db))
	r.POST("/api/token/", auth.ObtainTokenPairHandler(db))
	r.POST("/api/token/refresh/", auth.RefreshTokenHandler(db))
}
