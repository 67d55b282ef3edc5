package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Martokim/TamuCuts-api/models"
)

// ImportProductsFromExcel bulk-creates or updates products from an
// uploaded sheet. Expected columns: ID, Name, Category, Price,
// StockQuantity, Description. Rows with an existing ID update that
// product; rows without one create a new product.
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

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			category := models.ProductCategory(strings.ToLower(get(2)))
			price, err1 := decimal.NewFromString(get(3))
			stock, err2 := decimal.NewFromString(get(4))
			description := get(5)

			if name == "" || err1 != nil || err2 != nil || !category.Valid() ||
				price.IsNegative() || stock.IsNegative() {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:          name,
				Category:      category,
				Price:         price.Round(2),
				StockQuantity: stock.Round(2),
				Description:   description,
			}

			if idStr != "" {
				id, err := strconv.ParseUint(idStr, 10, 64)
				if err != nil {
					skippedCount++
					continue
				}
				var existing models.Product
				if db.First(&existing, id).Error == nil {
					product.ID = existing.ID
					product.CreatedAt = existing.CreatedAt
					if err := db.Save(&product).Error; err != nil {
						skippedCount++
						continue
					}
					updatedCount++
					continue
				}
			}

			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
