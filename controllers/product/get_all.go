package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/emmanuel-nwafor/Fore-made-webApp/catalog"
	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// GetProducts returns the catalog filtered and sorted per query params:
// search, category_id (repeatable), min_price, max_price, sort.
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := models.FilterConfig{
			Search: c.Query("search"),
			Sort:   models.SortOption(c.Query("sort")),
		}

		if raw := c.Query("min_price"); raw != "" {
			min, err := decimal.NewFromString(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			cfg.MinPrice = &min
		}
		if raw := c.Query("max_price"); raw != "" {
			max, err := decimal.NewFromString(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			cfg.MaxPrice = &max
		}

		for _, raw := range c.QueryArray("category_id") {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			cfg.Categories = append(cfg.Categories, uint(id))
		}

		switch cfg.Sort {
		case models.SortNone, models.SortPriceAsc, models.SortPriceDesc, models.SortNameAsc, models.SortNameDesc:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort option"})
			return
		}

		c.JSON(http.StatusOK, catalog.Filter(cat.Products(), cfg))
	}
}
