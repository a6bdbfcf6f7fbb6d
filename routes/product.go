package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/emmanuel-nwafor/Fore-made-webApp/controllers/product"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, d Deps) {
	productGroup := r.Group("/products")
	{
		productGroup.GET("/", productControllers.GetProducts(d.Catalog))              // GET /products
		productGroup.GET("/best-selling", productControllers.GetBestSelling(d.Catalog)) // GET /products/best-selling
		productGroup.GET("/export", productControllers.ExportProductsToExcel(d.Catalog)) // GET /products/export
		productGroup.GET("/:id", productControllers.GetProductByID(d.Catalog))        // GET /products/:id
	}

	r.GET("/categories", productControllers.GetCategories(d.Catalog)) // GET /categories
}
