package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/souqapp/souq-api/auth"
	userControllers "github.com/souqapp/souq-api/controllers/user"
)

// SetupAuthRoutes registers the public signup and token endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.POST("/signup", userControllers.Signup(db))
		api.POST("/token", auth.Login(db))
		api.POST("/token/refresh", auth.Refresh())
	}
}
