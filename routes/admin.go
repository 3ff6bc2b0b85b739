package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/souqapp/souq-api/controllers/product"
	"github.com/souqapp/souq-api/middleware"
)

// SetupAdminRoutes registers the catalog management endpoints, protected by
// the admin API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db))
		admin.POST("/products/import", productControllers.ImportProductsFromExcel(db))
		admin.GET("/products/export", productControllers.ExportProductsToExcel(db))
	}
}
