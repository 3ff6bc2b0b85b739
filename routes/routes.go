package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public auth,
// catalog, order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public: signup + token obtain/refresh
	SetupAuthRoutes(r, db)

	// Public catalog reads
	SetupProductRoutes(r, db)

	// Orders (JWT-protected)
	SetupOrderRoutes(r, db)

	// Admin catalog management (API-key-protected)
	SetupAdminRoutes(r, db)
}
