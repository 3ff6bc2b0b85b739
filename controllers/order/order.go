package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souqapp/souq-api/models"
)

type CreateOrderRequest struct {
	ProductID uint `json:"product_id"`
}

// CreateOrder places an order for the authenticated user. The product's
// current price is captured into the order, so later catalog changes leave
// the order untouched.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		order := models.Order{
			UserID:          userID,
			ProductID:       product.ID,
			PriceAtPurchase: product.Price,
			Reference:       uuid.New(),
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		order.Product = product
		c.JSON(http.StatusCreated, order)
	}
}

// GetMyOrders lists the authenticated user's orders, most recent first.
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		var orders []models.Order
		if err := db.
			Preload("Product").
			Where("user_id = ?", userID).
			Order("created_at desc, id desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
