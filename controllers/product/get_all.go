package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/souqapp/souq-api/models"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// GetProducts lists the catalog most-recent-first, paginated.
// Query params: location (exact JO|SA, anything else ignored), page, page_size.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		// Optional filter: ?location=JO|SA
		if loc := c.Query("location"); models.IsLocationCode(loc) {
			query = query.Where("location = ?", loc)
		}

		page := 1
		if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
			page = p
		}
		pageSize := defaultPageSize
		if ps, err := strconv.Atoi(c.Query("page_size")); err == nil && ps > 0 {
			pageSize = ps
			if pageSize > maxPageSize {
				pageSize = maxPageSize
			}
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var products []models.Product
		if err := query.
			Order("created_at desc, id desc").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"count":     count,
			"page":      page,
			"page_size": pageSize,
			"results":   products,
		})
	}
}
