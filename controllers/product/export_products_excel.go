package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/emmanuel-nwafor/Fore-made-webApp/catalog"
)

// ExportProductsToExcel streams the full catalog as an Excel workbook.
func ExportProductsToExcel(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Price", "CategoryID", "Rating", "Stock", "Image"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range cat.Products() {
			row := sheet.AddRow()
			row.AddCell().SetValue(int(p.ID))
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(int(p.CategoryID))
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Image)
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
