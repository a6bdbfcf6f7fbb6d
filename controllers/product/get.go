package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emmanuel-nwafor/Fore-made-webApp/catalog"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, ok := cat.Get(uint(id))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetCategories returns the category list.
func GetCategories(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Categories())
	}
}

// GetBestSelling returns the top rated products (rating >= 4.0, best first).
func GetBestSelling(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 8
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = n
		}
		c.JSON(http.StatusOK, cat.BestSelling(limit))
	}
}
