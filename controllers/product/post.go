package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/souqapp/souq-api/models"
)

type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Location    string `json:"location"`
}

// CreateProduct creates a new catalog product (admin).
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Title == "" || req.Price == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and price are required"})
			return
		}

		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		location := models.LocationJordan
		if req.Location != "" {
			location = models.NormalizeLocation(req.Location)
			if location == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location"})
				return
			}
		}

		product := models.Product{
			Title:       req.Title,
			Description: req.Description,
			Price:       price,
			Location:    location,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
