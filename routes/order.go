package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/souqapp/souq-api/controllers/order"
	"github.com/souqapp/souq-api/middleware"
)

// SetupOrderRoutes registers the order endpoints. Requires JWT middleware.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", orderControllers.CreateOrder(db))
		orders.GET("", orderControllers.GetMyOrders(db))
	}
}
