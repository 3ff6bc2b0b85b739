package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/souqapp/souq-api/models"
)

// ImportProductsFromExcel bulk-creates products from an uploaded .xlsx file
// (admin). The first sheet needs a header row with title, description, price
// and location columns (any casing, extra columns ignored); rows with an
// unrecognized location or a bad price are skipped, like the CSV importer.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		columns := make(map[string]int)
		for i, cell := range sheet.Rows[0].Cells {
			name := strings.ToLower(strings.TrimSpace(cell.String()))
			if _, seen := columns[name]; !seen {
				columns[name] = i
			}
		}
		for _, name := range []string{"title", "description", "price", "location"} {
			if _, ok := columns[name]; !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required column: " + name})
				return
			}
		}

		createdCount, skippedCount := 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(name string) string {
				if idx := columns[name]; idx < len(row.Cells) {
					return strings.TrimSpace(row.Cells[idx].String())
				}
				return ""
			}

			location := models.NormalizeLocation(get("location"))
			if location == "" {
				skippedCount++
				continue
			}

			price, err := decimal.NewFromString(get("price"))
			if err != nil || price.IsNegative() {
				skippedCount++
				continue
			}

			product := models.Product{
				Title:       get("title"),
				Description: get("description"),
				Price:       price,
				Location:    location,
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"skipped_count": skippedCount,
		})
	}
}
